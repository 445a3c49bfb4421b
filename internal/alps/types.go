// Package alps derives placement metadata for jobs launched by Cray ALPS (aprun),
// falling back to PBS environment data when no ALPS application is present.
package alps

import "strconv"

// Apid is an ALPS application id. Zero means no ALPS application was detected.
type Apid uint64

func (a Apid) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// Accelerator is the co-processor class requested for a command
type Accelerator int

const (
	AccelNone Accelerator = iota
	AccelGPU
	AccelKNC
)

// String returns the external name; unrecognized codes report "None".
func (a Accelerator) String() string {
	switch a {
	case AccelGPU:
		return "GPU"
	case AccelKNC:
		return "KNC"
	default:
		return "None"
	}
}

// AppSummary holds the application-wide part of the ALPS appinfo record
type AppSummary struct {
	NumCmds int // Number of commands (more than one for MPMD launches)
}

// CommandRecord is the resource request of one aprun command.
// Field comments give the aprun option each value comes from.
type CommandRecord struct {
	Width        int         // -n
	Depth        int         // -d
	FixedPerNode int         // -N
	NodeCnt      int         // nodes used by the command
	CpusPerCU    int         // -j
	PesPerSeg    int         // -S
	NodeSegCnt   int         // -sn
	SegBits      int         // -sl
	Accel        Accelerator // requested accelerator type
}

// PlacementLayout is the placement of an application, copied out of native memory.
// ControlNid == 0 means no placement data is available.
type PlacementLayout struct {
	ControlNid int   // Node running aprun (MOM node)
	NumPes     int   // Number of processing elements
	PeNids     []int // Node id per PE, length NumPes
}

// Source identifies where placement data comes from
type Source string

const (
	SourceALPS            Source = "alps"             // ALPS app found and queried
	SourceALPSUnavailable Source = "alps-unavailable" // apid set but the native query failed
	SourcePBS             Source = "pbs"              // no apid, PBS environment fallback
)
