package namespace

import (
	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// ListEntry is one row of a directory listing.
type ListEntry struct {
	Name string
	Kind Kind
	Size int
}

// Listing is the enumeration of one directory.
type Listing struct {
	// Dir is the canonical path that was listed.
	Dir string

	// Entries holds the ".." pseudo-entry first when Dir is not the root,
	// followed by the direct children in store order.
	Entries []ListEntry

	// Files and Dirs count the rows by kind; the pseudo-entry counts as a
	// directory.
	Files int
	Dirs  int

	// Bytes is the total size of the listed files.
	Bytes int
}

// List enumerates the direct children of dir. dir must be an existing
// directory.
func (s *Store) List(dir string) (Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byPath[dir]
	if !ok {
		return Listing{}, errors.Newf(errors.CodeNotFound, "directory not found: %s", dir)
	}
	if n.entry.Kind != Directory {
		return Listing{}, errors.Newf(errors.CodeWrongKind, "not a directory: %s", dir)
	}

	l := Listing{Dir: dir}
	if !vpath.IsRoot(dir) {
		l.Entries = append(l.Entries, ListEntry{Name: vpath.Dotdot, Kind: Directory})
		l.Dirs++
	}

	for _, e := range s.childrenOf(dir) {
		l.Entries = append(l.Entries, ListEntry{
			Name: vpath.ChildName(dir, e.Path),
			Kind: e.Kind,
			Size: e.Size,
		})
		if e.Kind == Directory {
			l.Dirs++
			continue
		}
		l.Files++
		l.Bytes += e.Size
	}
	return l, nil
}
