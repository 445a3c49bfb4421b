package alps

import (
	"sync"
)

// Service is the native ALPS query interface.
//
// QueryAppInfo returns a process-scoped handle: the records it exposes stay valid
// until Release is called, normally once at shutdown.
//
// QueryPlacement is call-scoped: any native buffer it allocates is released before
// it returns, on success and failure alike. The returned layout is Go memory.
type Service interface {
	QueryAppInfo(apid Apid) (*AppInfo, error)
	QueryPlacement(apid Apid) (PlacementLayout, error)
}

// NewService returns the native service for this build. Without the "alps"
// build tag every query fails with ErrNativeUnavailable.
func NewService() Service {
	return nativeService{}
}

// AppInfo owns the result of one appinfo query.
// Readers borrow Summary and Commands and must not keep them past Release.
type AppInfo struct {
	mu       sync.Mutex
	summary  AppSummary
	commands []CommandRecord
	free     func()
	released bool
}

// NewAppInfo wraps query results. free releases the backing native buffers
// and may be nil when the records live in Go memory only.
func NewAppInfo(summary AppSummary, commands []CommandRecord, free func()) *AppInfo {
	return &AppInfo{
		summary:  summary,
		commands: commands,
		free:     free,
	}
}

// Summary returns the application summary, or ErrReleased after Release.
func (a *AppInfo) Summary() (AppSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return AppSummary{}, ErrReleased
	}
	return a.summary, nil
}

// Commands returns the per-command records in launch order, or ErrReleased after Release.
// The slice is never longer than the summary's command count.
func (a *AppInfo) Commands() ([]CommandRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return nil, ErrReleased
	}
	n := a.summary.NumCmds
	if n < 0 {
		n = 0
	}
	if n > len(a.commands) {
		n = len(a.commands)
	}
	return a.commands[:n:n], nil
}

// Release frees the native buffers. Calls after the first are no-ops.
func (a *AppInfo) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return
	}
	a.released = true
	if a.free != nil {
		a.free()
	}
	a.commands = nil
}

// Released reports whether Release has been called
func (a *AppInfo) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// StaticService serves fixed records from memory. It stands in for libalps on
// machines without ALPS and counts the queries issued against it.
type StaticService struct {
	mu sync.Mutex

	Summary      AppSummary
	Commands     []CommandRecord
	Layout       PlacementLayout
	AppInfoErr   error // returned by QueryAppInfo when set
	PlacementErr error // returned by QueryPlacement when set

	appInfoCalls   int
	placementCalls int
	releases       int
}

// QueryAppInfo returns a handle over copies of Summary and Commands
func (s *StaticService) QueryAppInfo(apid Apid) (*AppInfo, error) {
	if apid == 0 {
		return nil, ErrNoIdentity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appInfoCalls++
	if s.AppInfoErr != nil {
		return nil, s.AppInfoErr
	}
	cmds := make([]CommandRecord, len(s.Commands))
	copy(cmds, s.Commands)
	return NewAppInfo(s.Summary, cmds, func() {
		s.mu.Lock()
		s.releases++
		s.mu.Unlock()
	}), nil
}

// QueryPlacement returns a copy of Layout
func (s *StaticService) QueryPlacement(apid Apid) (PlacementLayout, error) {
	if apid == 0 {
		return PlacementLayout{}, ErrNoIdentity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placementCalls++
	if s.PlacementErr != nil {
		return PlacementLayout{}, s.PlacementErr
	}
	layout := s.Layout
	layout.PeNids = append([]int(nil), s.Layout.PeNids...)
	return layout, nil
}

// AppInfoCalls returns how many appinfo queries were issued
func (s *StaticService) AppInfoCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appInfoCalls
}

// PlacementCalls returns how many placement queries were issued
func (s *StaticService) PlacementCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placementCalls
}

// Releases returns how many appinfo handles were released
func (s *StaticService) Releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releases
}
