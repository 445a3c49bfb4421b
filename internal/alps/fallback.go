package alps

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/camaclean/alpsinfo/internal/utils"
)

// Default PBS variables consulted when no ALPS application is present
const (
	DefaultNodeCountVar = "PBS_NUM_NODES"
	DefaultWidthVar     = "PBS_NP"
	DefaultNodeFileVar  = "PBS_NODEFILE"
	DefaultJobIDVar     = "PBS_JOBID"
)

// Fallback derives placement data from the PBS job environment.
// Every method is best-effort: missing or malformed input reports "unknown"
// (ok == false) or an empty list, never an error.
type Fallback struct {
	Lookup       LookupFunc                   // nil means os.LookupEnv
	ReadFile     func(string) ([]byte, error) // nil means os.ReadFile
	NodeCountVar string
	WidthVar     string
	NodeFileVar  string
	JobIDVar     string
}

// NewFallback returns a Fallback reading the default PBS variables from the process environment
func NewFallback() *Fallback {
	return &Fallback{
		NodeCountVar: DefaultNodeCountVar,
		WidthVar:     DefaultWidthVar,
		NodeFileVar:  DefaultNodeFileVar,
		JobIDVar:     DefaultJobIDVar,
	}
}

// NodeCount returns the number of nodes in the PBS allocation
func (f *Fallback) NodeCount() (int, bool) {
	return f.envCount(f.NodeCountVar)
}

// PeCount returns the number of processors (PEs) in the PBS allocation
func (f *Fallback) PeCount() (int, bool) {
	return f.envCount(f.WidthVar)
}

// JobID returns the PBS job id, or false outside of a PBS job
func (f *Fallback) JobID() (string, bool) {
	if f.JobIDVar == "" {
		return "", false
	}
	id, ok := f.lookup()(f.JobIDVar)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// NodeList reads the node file, one decimal node id per line.
// Reading stops at the first line that is not a non-negative integer.
func (f *Fallback) NodeList() []int {
	nodes := []int{}
	if f.NodeFileVar == "" {
		return nodes
	}
	path, ok := f.lookup()(f.NodeFileVar)
	if !ok || path == "" {
		utils.PrintDebug("%s not set; no fallback node list", f.NodeFileVar)
		return nodes
	}

	readFile := f.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		utils.PrintDebug("Cannot read node file %s: %v", path, err)
		return nodes
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		nid, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || nid < 0 {
			break
		}
		nodes = append(nodes, nid)
	}
	return nodes
}

func (f *Fallback) envCount(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	val, ok := f.lookup()(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n < 0 {
		utils.PrintDebug("Ignoring malformed %s=%q", name, val)
		return 0, false
	}
	return n, true
}

func (f *Fallback) lookup() LookupFunc {
	if f.Lookup == nil {
		return os.LookupEnv
	}
	return f.Lookup
}
