package lineedit

// DefaultCapacity is the size of the input buffer. One slot is reserved, so
// a line holds at most DefaultCapacity-1 characters.
const DefaultCapacity = 256

// Buffer is a bounded line of input. Edits happen at the end.
type Buffer struct {
	data []byte
	cap  int
}

// NewBuffer returns an empty buffer of the given capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]byte, 0, capacity), cap: capacity}
}

// Insert appends c if there is room and reports whether it did.
func (b *Buffer) Insert(c byte) bool {
	if len(b.data) >= b.cap-1 {
		return false
	}
	b.data = append(b.data, c)
	return true
}

// Backspace removes the last character and reports whether there was one.
func (b *Buffer) Backspace() bool {
	if len(b.data) == 0 {
		return false
	}
	b.data = b.data[:len(b.data)-1]
	return true
}

// Set replaces the contents, truncating to the buffer's limit.
func (b *Buffer) Set(s string) {
	if len(s) > b.cap-1 {
		s = s[:b.cap-1]
	}
	b.data = append(b.data[:0], s...)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Limit returns the maximum number of characters.
func (b *Buffer) Limit() int {
	return b.cap - 1
}

func (b *Buffer) String() string {
	return string(b.data)
}
