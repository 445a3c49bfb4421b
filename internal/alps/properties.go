package alps

// absencePolicy says what a property reports when no command record is available
type absencePolicy int

const (
	absentAsZero       absencePolicy = iota // 0, for callers that always expect a number
	absentAsUnknown                         // Unknown
	absentFromPeCount                       // PBS PE count without an apid, else Unknown
	absentFromNodeCount                     // PBS node count without an apid, else Unknown
)

// Property describes one accessor on the first command of the application
type Property struct {
	Name        string
	Aliases     []string
	Description string

	extract func(CommandRecord) Value
	absent  absencePolicy
}

func numberOf(field func(CommandRecord) int) func(CommandRecord) Value {
	return func(c CommandRecord) Value {
		return NumberValue(int64(field(c)))
	}
}

// Properties is the accessor table, in display order
var Properties = []Property{
	{
		Name:        "width",
		Description: "Number of PEs (aprun -n) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.Width }),
		absent:      absentFromPeCount,
	},
	{
		Name:        "depth",
		Description: "CPUs per PE (aprun -d) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.Depth }),
	},
	{
		Name:        "fixedPerNode",
		Description: "PEs per node (aprun -N) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.FixedPerNode }),
	},
	{
		Name:        "nodeCount",
		Aliases:     []string{"nodeCnt"},
		Description: "Number of nodes used by the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.NodeCnt }),
		absent:      absentFromNodeCount,
	},
	{
		Name:        "cpusPerComputeUnit",
		Aliases:     []string{"cpusPerCU"},
		Description: "CPUs per compute unit (aprun -j) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.CpusPerCU }),
	},
	{
		Name:        "pesPerSegment",
		Aliases:     []string{"pesPerSeg"},
		Description: "PEs per NUMA node (aprun -S) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.PesPerSeg }),
	},
	{
		Name:        "nodeSegmentCount",
		Aliases:     []string{"nodeSegCnt"},
		Description: "NUMA nodes per node (aprun -sn) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.NodeSegCnt }),
	},
	{
		Name:        "segmentBits",
		Aliases:     []string{"segBits"},
		Description: "NUMA node list bitmask (aprun -sl) for the first command",
		extract:     numberOf(func(c CommandRecord) int { return c.SegBits }),
	},
	{
		Name:        "accelerator",
		Aliases:     []string{"accel"},
		Description: "Requested accelerator type (None, GPU or KNC)",
		extract: func(c CommandRecord) Value {
			return StringValue(normalizeAccel(c.Accel).String())
		},
		absent: absentAsUnknown,
	},
}

var propertyIndex = buildPropertyIndex()

func buildPropertyIndex() map[string]*Property {
	index := make(map[string]*Property)
	for i := range Properties {
		p := &Properties[i]
		index[p.Name] = p
		for _, alias := range p.Aliases {
			index[alias] = p
		}
	}
	return index
}

// LookupProperty finds a property by name or alias
func LookupProperty(name string) (*Property, bool) {
	p, ok := propertyIndex[name]
	return p, ok
}

// PropertyNames returns the canonical property names in table order
func PropertyNames() []string {
	names := make([]string, len(Properties))
	for i, p := range Properties {
		names[i] = p.Name
	}
	return names
}
