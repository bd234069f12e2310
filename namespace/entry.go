package namespace

import "bytes"

// Bounds on the store. Operations that would exceed them fail with
// CAPACITY_EXCEEDED rather than truncate.
const (
	// MaxEntries is the maximum number of entries, the root included.
	MaxEntries = 64

	// MaxPathLen is the maximum length of a path in bytes, separators included.
	MaxPathLen = 31

	// MaxContentLen is the maximum size of a file's content in bytes.
	MaxContentLen = 4095
)

// Kind distinguishes files from directories.
type Kind uint8

const (
	// File is a regular file with content.
	File Kind = iota + 1

	// Directory holds no content; its children are the entries one segment below it.
	Directory
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry is one record in the store.
// Directory entries always have Size 0 and no Content.
type Entry struct {
	Path    string
	Kind    Kind
	Size    int
	Content []byte
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// clone returns a copy that shares no memory with e.
func (e Entry) clone() Entry {
	e.Content = bytes.Clone(e.Content)
	return e
}
