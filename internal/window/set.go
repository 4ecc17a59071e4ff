package window

// Set is the ordered collection of windows with one current window.
// Once the first window is added the set is never empty.
type Set struct {
	windows []*Window
	current int
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends w. The first window added becomes current.
func (s *Set) Add(w *Window) {
	s.windows = append(s.windows, w)
}

// Create builds a window from content, appends it and returns it.
func (s *Set) Create(path string, content []string, undoLevels int) *Window {
	w := New(path, content, undoLevels)
	s.Add(w)
	return w
}

// Current returns the current window, or nil for an empty set.
func (s *Set) Current() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[s.current]
}

// CycleNext makes the next window current, wrapping to the first,
// and returns it.
func (s *Set) CycleNext() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	s.current = (s.current + 1) % len(s.windows)
	return s.windows[s.current]
}

// Index returns the position of the current window.
func (s *Set) Index() int {
	return s.current
}

// Len returns the number of windows.
func (s *Set) Len() int {
	return len(s.windows)
}

// All returns the windows in insertion order.
func (s *Set) All() []*Window {
	return append([]*Window(nil), s.windows...)
}

// ByPath returns the first window editing path.
func (s *Set) ByPath(path string) (*Window, bool) {
	for _, w := range s.windows {
		if w.Path == path {
			return w, true
		}
	}
	return nil, false
}
