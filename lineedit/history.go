package lineedit

// DefaultHistorySize is the number of committed lines remembered.
const DefaultHistorySize = 10

// NotBrowsing is the browse cursor value for the live line.
const NotBrowsing = -1

// History is a bounded ring of committed lines, oldest first, with a
// browse cursor.
//
// The cursor counts back from the most recent entry: 0 is the newest line,
// Len()-1 the oldest, and NotBrowsing the live line being typed.
type History struct {
	entries []string
	size    int
	cursor  int
}

// NewHistory returns an empty history holding at most size lines.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size, cursor: NotBrowsing}
}

// Add appends line unless it is empty or equal to the newest entry. When
// the ring is full the oldest entry is evicted. It reports whether line was
// added.
func (h *History) Add(line string) bool {
	if line == "" {
		return false
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return false
	}
	if len(h.entries) == h.size {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.size-1]
	}
	h.entries = append(h.entries, line)
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Cursor returns the browse cursor.
func (h *History) Cursor() int {
	return h.cursor
}

// Browsing reports whether the cursor is on a history entry.
func (h *History) Browsing() bool {
	return h.cursor != NotBrowsing
}

// Current returns the entry under the cursor, or "" when not browsing.
func (h *History) Current() string {
	if h.cursor == NotBrowsing {
		return ""
	}
	return h.entries[len(h.entries)-1-h.cursor]
}

// Older moves the cursor one entry back in time, stopping at the oldest.
// It reports whether the cursor moved.
func (h *History) Older() bool {
	return h.move(1)
}

// Newer moves the cursor one entry forward in time, stopping at the live
// line. It reports whether the cursor moved.
func (h *History) Newer() bool {
	return h.move(-1)
}

func (h *History) move(delta int) bool {
	if len(h.entries) == 0 {
		return false
	}
	next := h.cursor + delta
	if next < NotBrowsing {
		next = NotBrowsing
	}
	if next > len(h.entries)-1 {
		next = len(h.entries) - 1
	}
	if next == h.cursor {
		return false
	}
	h.cursor = next
	return true
}

// Reset returns the cursor to the live line.
func (h *History) Reset() {
	h.cursor = NotBrowsing
}
