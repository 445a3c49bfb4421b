package alps

// CommandSummary is the externally visible resource request of one command
type CommandSummary struct {
	Width        int         `json:"width" yaml:"width"`
	Depth        int         `json:"depth" yaml:"depth"`
	FixedPerNode int         `json:"fixedPerNode" yaml:"fixedPerNode"`
	NodeCnt      int         `json:"nodeCnt" yaml:"nodeCnt"`
	CpusPerCU    int         `json:"cpusPerCU" yaml:"cpusPerCU"`
	PesPerSeg    int         `json:"pesPerSeg" yaml:"pesPerSeg"`
	NodeSegCnt   int         `json:"nodeSegCnt" yaml:"nodeSegCnt"`
	SegBits      int         `json:"segBits" yaml:"segBits"`
	Accel        Accelerator `json:"accel" yaml:"accel"`
}

// Report summarizes every command of an ALPS application
type Report struct {
	Apid     Apid             `json:"apid" yaml:"apid"`
	Commands []CommandSummary `json:"cmds" yaml:"cmds"`
}

// BuildSummary assembles the report for apid, one entry per command in launch order.
// Returns nil when apid is 0.
func BuildSummary(apid Apid, summary AppSummary, commands []CommandRecord) *Report {
	if apid == 0 {
		return nil
	}

	n := summary.NumCmds
	if n > len(commands) {
		n = len(commands)
	}
	if n < 0 {
		n = 0
	}

	report := &Report{
		Apid:     apid,
		Commands: make([]CommandSummary, 0, n),
	}
	for _, c := range commands[:n] {
		report.Commands = append(report.Commands, CommandSummary{
			Width:        c.Width,
			Depth:        c.Depth,
			FixedPerNode: c.FixedPerNode,
			NodeCnt:      c.NodeCnt,
			CpusPerCU:    c.CpusPerCU,
			PesPerSeg:    c.PesPerSeg,
			NodeSegCnt:   c.NodeSegCnt,
			SegBits:      c.SegBits,
			Accel:        normalizeAccel(c.Accel),
		})
	}
	return report
}

// MarshalText renders the accelerator by name for JSON and YAML
func (a Accelerator) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func normalizeAccel(a Accelerator) Accelerator {
	switch a {
	case AccelGPU, AccelKNC:
		return a
	default:
		return AccelNone
	}
}
