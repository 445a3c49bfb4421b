package alps

import (
	"errors"
	"fmt"
	"sync"

	"github.com/camaclean/alpsinfo/internal/utils"
)

// Options configures a Context
type Options struct {
	Lookup   LookupFunc // Environment lookup; nil means os.LookupEnv
	ApidVar  string     // Variable holding the apid; empty means ALPS_APP_ID
	Service  Service    // Native service; nil means NewService()
	Fallback *Fallback  // PBS fallback; nil means NewFallback() reading through Lookup
}

// Context holds the placement state of the current process.
// The apid is resolved and the appinfo query issued once, in New; afterwards
// every accessor only reads that state, except the node and control-node
// accessors which issue a fresh placement query per call.
type Context struct {
	apid     Apid
	service  Service
	fallback *Fallback
	appInfo  *AppInfo
	queryErr error

	summaryOnce sync.Once
	summary     *Report

	placementMu sync.Mutex
	closeOnce   sync.Once
}

// New resolves the apid and queries ALPS for it. Query failures are logged
// and leave the context without application data; they are never returned.
func New(opts Options) *Context {
	c := &Context{
		service:  opts.Service,
		fallback: opts.Fallback,
	}
	if c.service == nil {
		c.service = NewService()
	}
	if c.fallback == nil {
		c.fallback = NewFallback()
		c.fallback.Lookup = opts.Lookup
	}

	c.apid = ResolveIdentity(opts.Lookup, opts.ApidVar)
	if c.apid == 0 {
		utils.PrintDebug("No ALPS application id found; using PBS environment")
		return c
	}
	utils.PrintDebug("ALPS apid: %d", c.apid)

	info, err := c.service.QueryAppInfo(c.apid)
	if err != nil {
		c.queryErr = err
		if IsQueryError(err) {
			utils.PrintWarning("%v", err)
		} else {
			utils.PrintDebug("ALPS appinfo for apid %d unavailable: %v", c.apid, err)
		}
		return c
	}
	c.appInfo = info
	return c
}

// Close releases the appinfo buffers. It is safe to call more than once.
func (c *Context) Close() {
	c.closeOnce.Do(func() {
		if c.appInfo != nil {
			c.appInfo.Release()
		}
	})
}

// Apid returns the ALPS application id, or false when none was found
func (c *Context) Apid() (Apid, bool) {
	return c.apid, c.apid != 0
}

// Source reports which data source answers queries
func (c *Context) Source() Source {
	switch {
	case c.apid == 0:
		return SourcePBS
	case c.appInfo == nil:
		return SourceALPSUnavailable
	default:
		return SourceALPS
	}
}

// QueryErr returns the appinfo query failure recorded by New, if any
func (c *Context) QueryErr() error {
	return c.queryErr
}

// Fallback returns the PBS fallback source
func (c *Context) Fallback() *Fallback {
	return c.fallback
}

// Property returns the named property of the first command
func (c *Context) Property(name string) (Value, error) {
	p, ok := LookupProperty(name)
	if !ok {
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	if cmd, ok := c.firstCommand(); ok {
		return p.extract(cmd), nil
	}
	return c.absentValue(p), nil
}

func (c *Context) absentValue(p *Property) Value {
	switch p.absent {
	case absentAsZero:
		return NumberValue(0)
	case absentFromPeCount:
		if c.apid == 0 {
			if n, ok := c.fallback.PeCount(); ok {
				return NumberValue(int64(n))
			}
		}
		return Unknown
	case absentFromNodeCount:
		if c.apid == 0 {
			if n, ok := c.fallback.NodeCount(); ok {
				return NumberValue(int64(n))
			}
		}
		return Unknown
	default:
		return Unknown
	}
}

func (c *Context) firstCommand() (CommandRecord, bool) {
	if c.appInfo == nil {
		return CommandRecord{}, false
	}
	cmds, err := c.appInfo.Commands()
	if err != nil || len(cmds) == 0 {
		return CommandRecord{}, false
	}
	return cmds[0], true
}

// Summary returns the per-command report, built on first use and cached.
// Returns nil without ALPS application data. Callers must not modify it.
func (c *Context) Summary() *Report {
	c.summaryOnce.Do(func() {
		if c.appInfo == nil {
			return
		}
		summary, err := c.appInfo.Summary()
		if err != nil {
			return
		}
		cmds, err := c.appInfo.Commands()
		if err != nil {
			return
		}
		c.summary = BuildSummary(c.apid, summary, cmds)
	})
	return c.summary
}

// UniqueNodeIDs returns the nodes used by the application, one entry per run of PEs
func (c *Context) UniqueNodeIDs() []int {
	return UniqueNodes(c.peNids())
}

// UniqueNodeHostnames is UniqueNodeIDs formatted as hostnames
func (c *Context) UniqueNodeHostnames() []string {
	return FormatNodeIDs(c.UniqueNodeIDs())
}

// PerPeNodeIDs returns the node of every PE
func (c *Context) PerPeNodeIDs() []int {
	return AllPesNodes(c.peNids())
}

// PerPeNodeHostnames is PerPeNodeIDs formatted as hostnames
func (c *Context) PerPeNodeHostnames() []string {
	return FormatNodeIDs(c.PerPeNodeIDs())
}

// ControlNodeID returns the node running aprun, or false when unknown
func (c *Context) ControlNodeID() (int, bool) {
	layout, ok := c.placement()
	if !ok {
		return 0, false
	}
	return layout.ControlNid, true
}

// ControlNodeHostname is ControlNodeID formatted as a hostname
func (c *Context) ControlNodeHostname() (string, bool) {
	nid, ok := c.ControlNodeID()
	if !ok {
		return "", false
	}
	return FormatNodeID(nid), true
}

func (c *Context) peNids() []int {
	if c.apid == 0 {
		return c.fallback.NodeList()
	}
	layout, ok := c.placement()
	if !ok {
		return []int{}
	}
	return layout.PeNids
}

// placement issues one placement query. It reports false without application
// data, on query failure, or when ALPS returns no control node.
func (c *Context) placement() (PlacementLayout, bool) {
	if c.appInfo == nil || c.appInfo.Released() {
		return PlacementLayout{}, false
	}

	c.placementMu.Lock()
	defer c.placementMu.Unlock()

	layout, err := c.service.QueryPlacement(c.apid)
	if err != nil {
		if !errors.Is(err, ErrNativeUnavailable) {
			utils.PrintWarning("%v", err)
		}
		return PlacementLayout{}, false
	}
	if layout.ControlNid == 0 {
		utils.PrintDebug("ALPS returned no placement for apid %d", c.apid)
		return PlacementLayout{}, false
	}
	if len(layout.PeNids) > layout.NumPes && layout.NumPes >= 0 {
		layout.PeNids = layout.PeNids[:layout.NumPes]
	}
	return layout, true
}
