package alps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoRelease(t *testing.T) {
	freed := 0
	info := NewAppInfo(AppSummary{NumCmds: 2}, mpmdCommands[:2], func() { freed++ })

	cmds, err := info.Commands()
	require.NoError(t, err)
	assert.Len(t, cmds, 2)
	assert.False(t, info.Released())

	info.Release()
	info.Release()
	assert.Equal(t, 1, freed)
	assert.True(t, info.Released())

	_, err = info.Commands()
	assert.ErrorIs(t, err, ErrReleased)
	_, err = info.Summary()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestAppInfoCommandsTruncated(t *testing.T) {
	info := NewAppInfo(AppSummary{NumCmds: 1}, mpmdCommands, nil)
	cmds, err := info.Commands()
	require.NoError(t, err)
	assert.Len(t, cmds, 1)

	info = NewAppInfo(AppSummary{NumCmds: -1}, mpmdCommands, nil)
	cmds, err = info.Commands()
	require.NoError(t, err)
	assert.Empty(t, cmds)

	info.Release()
}

func TestQueryError(t *testing.T) {
	err := NewQueryError("appinfo", 42, -1, "no such apid")
	assert.True(t, errors.Is(err, ErrQueryFailed))
	assert.True(t, IsQueryError(err))
	assert.Equal(t, "ALPS appinfo query for apid 42 failed (code -1): no such apid", err.Error())

	bare := NewQueryError("placement", 42, 3, "")
	assert.Equal(t, "ALPS placement query for apid 42 failed (code 3)", bare.Error())

	assert.False(t, IsQueryError(ErrNativeUnavailable))
}

func TestNativeServiceWithoutLibrary(t *testing.T) {
	if nativeAvailable {
		t.Skip("built with libalps")
	}
	svc := NewService()

	_, err := svc.QueryAppInfo(0)
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.QueryAppInfo(12)
	assert.ErrorIs(t, err, ErrNativeUnavailable)

	_, err = svc.QueryPlacement(12)
	assert.ErrorIs(t, err, ErrNativeUnavailable)
}

func TestStaticServiceCopies(t *testing.T) {
	svc := &StaticService{
		Summary:  AppSummary{NumCmds: 1},
		Commands: []CommandRecord{{Width: 8}},
		Layout:   PlacementLayout{ControlNid: 3, NumPes: 2, PeNids: []int{10, 11}},
	}

	info, err := svc.QueryAppInfo(5)
	require.NoError(t, err)
	svc.Commands[0].Width = 99
	cmds, _ := info.Commands()
	assert.Equal(t, 8, cmds[0].Width)

	layout, err := svc.QueryPlacement(5)
	require.NoError(t, err)
	layout.PeNids[0] = 0
	assert.Equal(t, 10, svc.Layout.PeNids[0])

	info.Release()
	assert.Equal(t, 1, svc.AppInfoCalls())
	assert.Equal(t, 1, svc.PlacementCalls())
	assert.Equal(t, 1, svc.Releases())
}
