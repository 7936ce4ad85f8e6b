package state

// PathHistory is the back/forward stack of visited directories. Index always
// points at the current entry.
type PathHistory struct {
	entries []string
	index   int
}

// NewPathHistory starts a history holding only initial.
func NewPathHistory(initial string) *PathHistory {
	return &PathHistory{entries: []string{initial}}
}

// Navigate records a forward visit: entries after the current one are
// discarded and path becomes the new last entry. Repeated paths are kept.
func (h *PathHistory) Navigate(path string) {
	if len(h.entries) > 0 && h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, path)
	h.index = len(h.entries) - 1
}

// Back moves one entry back and returns the new current path.
func (h *PathHistory) Back() (string, bool) {
	path, ok := h.PeekBack()
	if ok {
		h.index--
	}
	return path, ok
}

// Forward moves one entry forward and returns the new current path.
func (h *PathHistory) Forward() (string, bool) {
	path, ok := h.PeekForward()
	if ok {
		h.index++
	}
	return path, ok
}

// PeekBack returns the entry Back would move to without moving.
func (h *PathHistory) PeekBack() (string, bool) {
	if !h.CanBack() {
		return "", false
	}
	return h.entries[h.index-1], true
}

// PeekForward returns the entry Forward would move to without moving.
func (h *PathHistory) PeekForward() (string, bool) {
	if !h.CanForward() {
		return "", false
	}
	return h.entries[h.index+1], true
}

func (h *PathHistory) CanBack() bool    { return h.index > 0 }
func (h *PathHistory) CanForward() bool { return h.index < len(h.entries)-1 }

// Current returns the entry at the index, or "" for an empty history.
func (h *PathHistory) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.index]
}

func (h *PathHistory) Index() int { return h.index }
func (h *PathHistory) Len() int   { return len(h.entries) }

// Entries returns a copy of the recorded paths, oldest first.
func (h *PathHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}
