package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedContent int

func (c fixedContent) ScrollHeight() int { return int(c) }

func TestDeriveSizingMode(t *testing.T) {
	assert.Equal(t, GrowToContent, DeriveSizingMode(1200, 800))
	assert.Equal(t, FillViewport, DeriveSizingMode(800, 800))
	assert.Equal(t, FillViewport, DeriveSizingMode(300, 800))
}

func TestShell_ToggleShowsOverlay(t *testing.T) {
	s := NewShell()
	assert.False(t, s.View().Overlay)

	s.ToggleNavbar()
	v := s.View()
	assert.True(t, v.Expanded)
	assert.True(t, v.Overlay)

	s.ToggleNavbar()
	assert.False(t, s.View().Overlay)
}

func TestShell_DefaultsToFillViewport(t *testing.T) {
	v := NewShell().View()
	assert.Equal(t, FillViewport, v.Sizing)
	assert.Equal(t, "flex flex-col items-center relative grow h-screen", v.ContentClass)
}

func TestShell_MeasuresOnMountAndResize(t *testing.T) {
	vp := NewReportedViewport()
	vp.Resize(800, 1200)

	s := NewShell()
	s.Mount(vp, vp)
	assert.Equal(t, GrowToContent, s.Sizing())
	assert.Equal(t, 1, vp.Listeners())

	vp.Resize(1600, 1200)
	assert.Equal(t, FillViewport, s.Sizing())

	vp.Resize(600, 1200)
	assert.Equal(t, GrowToContent, s.View().Sizing)
}

func TestShell_UnmountDetachesListener(t *testing.T) {
	vp := NewReportedViewport()
	vp.Resize(800, 400)
	s := NewShell()
	s.Mount(vp, vp)
	require.True(t, s.Mounted())

	s.Unmount()
	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Zero(t, vp.Listeners())

	vp.Resize(100, 400)
	assert.Equal(t, FillViewport, s.Sizing(), "unmounted shell must not re-measure")
}

func TestShell_RemountReplacesListener(t *testing.T) {
	first := NewReportedViewport()
	second := NewReportedViewport()
	second.Resize(500, 900)

	s := NewShell()
	s.Mount(first, fixedContent(10))
	s.Mount(second, second)

	assert.Zero(t, first.Listeners())
	assert.Equal(t, 1, second.Listeners())
	assert.Equal(t, GrowToContent, s.Sizing())
}
