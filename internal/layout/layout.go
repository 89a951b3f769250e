// Package layout is the page shell: a collapsible side rail and a content
// region whose height class follows the measured content height.
package layout

import (
	"strings"
	"sync"
)

// SizingMode is the height class applied to the content region.
type SizingMode string

const (
	FillViewport  SizingMode = "h-screen"
	GrowToContent SizingMode = "h-full"
)

// DeriveSizingMode picks GrowToContent only when the content is strictly
// taller than the viewport.
func DeriveSizingMode(contentHeight, viewportHeight int) SizingMode {
	if contentHeight > viewportHeight {
		return GrowToContent
	}
	return FillViewport
}

// Viewport reports its height and notifies listeners on resize. The returned
// func removes the listener.
type Viewport interface {
	Height() int
	OnResize(fn func()) (remove func())
}

// Content reports the full scrollable height of the content region.
type Content interface {
	ScrollHeight() int
}

const baseContentClass = "flex flex-col items-center relative grow"

// View is what the page template needs to render the shell.
type View struct {
	Expanded     bool       `json:"expanded"`
	Overlay      bool       `json:"overlay"`
	Sizing       SizingMode `json:"sizing"`
	ContentClass string     `json:"content_class"`
}

type Shell struct {
	mu       sync.Mutex
	expanded bool
	sizing   SizingMode
	viewport Viewport
	content  Content
	remove   func()
}

func NewShell() *Shell {
	return &Shell{sizing: FillViewport}
}

func (s *Shell) ToggleNavbar() {
	s.mu.Lock()
	s.expanded = !s.expanded
	s.mu.Unlock()
}

func (s *Shell) Expanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

func (s *Shell) Sizing() SizingMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sizing
}

// Mount measures once and re-measures on every viewport resize until Unmount.
// Mounting again replaces the previous viewport and content.
func (s *Shell) Mount(vp Viewport, content Content) {
	s.Unmount()

	s.mu.Lock()
	s.viewport = vp
	s.content = content
	s.mu.Unlock()

	s.measure()
	remove := vp.OnResize(s.measure)

	s.mu.Lock()
	s.remove = remove
	s.mu.Unlock()
}

// Unmount detaches the resize listener. Safe to call more than once.
func (s *Shell) Unmount() {
	s.mu.Lock()
	remove := s.remove
	s.remove = nil
	s.viewport = nil
	s.content = nil
	s.mu.Unlock()

	if remove != nil {
		remove()
	}
}

func (s *Shell) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove != nil
}

func (s *Shell) measure() {
	s.mu.Lock()
	vp, content := s.viewport, s.content
	s.mu.Unlock()
	if vp == nil || content == nil {
		return
	}

	mode := DeriveSizingMode(content.ScrollHeight(), vp.Height())

	s.mu.Lock()
	s.sizing = mode
	s.mu.Unlock()
}

func (s *Shell) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Expanded:     s.expanded,
		Overlay:      s.expanded,
		Sizing:       s.sizing,
		ContentClass: strings.Join([]string{baseContentClass, string(s.sizing)}, " "),
	}
}
