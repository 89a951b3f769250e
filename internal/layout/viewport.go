package layout

import "sync"

// ReportedViewport is a Viewport fed by size reports from the browser.
// It also stands in for the content region, since the page reports both
// heights in one message.
type ReportedViewport struct {
	mu            sync.Mutex
	height        int
	contentHeight int
	nextID        int
	listeners     map[int]func()
}

func NewReportedViewport() *ReportedViewport {
	return &ReportedViewport{listeners: make(map[int]func())}
}

func (v *ReportedViewport) Height() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.height
}

func (v *ReportedViewport) ScrollHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contentHeight
}

func (v *ReportedViewport) OnResize(fn func()) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// Resize records new heights and calls every listener outside the lock.
func (v *ReportedViewport) Resize(viewportHeight, contentHeight int) {
	v.mu.Lock()
	v.height = viewportHeight
	v.contentHeight = contentHeight
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (v *ReportedViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
