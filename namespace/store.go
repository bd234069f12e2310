package namespace

import (
	"bytes"
	"slices"
	"sync"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// node is the store's internal record. seq is the creation order and never
// changes, so sorting any subset by seq reproduces store order.
type node struct {
	entry Entry
	seq   uint64
}

// Store is the in-memory namespace.
//
// Entries are kept three ways: in store order (creation order with deletions
// compacted out), by path, and grouped under their parent path. The parent
// index is keyed by path string rather than by node, so entries orphaned by a
// non-cascading delete stay filed under the old parent and re-attach when a
// directory of that name is created again.
//
// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	order    []*node
	byPath   map[string]*node
	children map[string][]*node
	nextSeq  uint64
}

// New returns an empty store. Most callers want ApplySeed next; an empty
// store has no root.
func New() *Store {
	return &Store{
		byPath:   make(map[string]*node),
		children: make(map[string][]*node),
	}
}

// CreateFile adds a file at path holding a copy of content.
//
// It fails if the store is full, path or content exceeds its bound, path
// already exists, or the parent of path is not an existing directory.
func (s *Store) CreateFile(path string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(path, File, content)
}

// CreateDirectory adds a directory at path.
//
// It fails under the same conditions as CreateFile. The root is the only
// path exempt from the parent check.
func (s *Store) CreateDirectory(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(path, Directory, nil)
}

func (s *Store) create(path string, kind Kind, content []byte) error {
	if path == "" {
		return errors.New(errors.CodeInvalidPath, "empty path")
	}
	if len(s.order) >= MaxEntries {
		return errors.WithContext(
			errors.Newf(errors.CodeCapacityExceeded, "namespace full (%d entries)", MaxEntries),
			"path", path,
		)
	}
	if len(path) > MaxPathLen {
		return errors.WithContext(
			errors.Newf(errors.CodeCapacityExceeded, "path too long: %d characters (max %d)", len(path), MaxPathLen),
			"path", path,
		)
	}
	if len(content) > MaxContentLen {
		return errors.WithContext(
			errors.Newf(errors.CodeCapacityExceeded, "content too long: %d bytes (max %d)", len(content), MaxContentLen),
			"path", path,
		)
	}
	if _, ok := s.byPath[path]; ok {
		return errors.Newf(errors.CodeAlreadyExists, "already exists: %s", path)
	}

	parent := vpath.Parent(path)
	if !(kind == Directory && vpath.IsRoot(path)) {
		if parent == "" {
			return errors.Newf(errors.CodeInvalidPath, "not an absolute path: %s", path)
		}
		p, ok := s.byPath[parent]
		if !ok {
			return errors.WithContext(
				errors.Newf(errors.CodeNotFound, "parent directory not found: %s", parent),
				"path", path,
			)
		}
		if p.entry.Kind != Directory {
			return errors.WithContext(
				errors.Newf(errors.CodeWrongKind, "parent is not a directory: %s", parent),
				"path", path,
			)
		}
	}

	n := &node{
		entry: Entry{Path: path, Kind: kind},
		seq:   s.nextSeq,
	}
	s.nextSeq++
	if kind == File {
		n.entry.Content = bytes.Clone(content)
		n.entry.Size = len(content)
	}

	s.order = append(s.order, n)
	s.byPath[path] = n
	if !vpath.IsRoot(path) {
		s.attach(parent, n)
	}
	return nil
}

// Delete removes exactly one entry. Descendants are left untouched.
// The root cannot be deleted.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vpath.IsRoot(path) {
		return errors.New(errors.CodeInvalidPath, "cannot delete the root directory")
	}
	n, ok := s.byPath[path]
	if !ok {
		return errors.Newf(errors.CodeNotFound, "not found: %s", path)
	}

	// Compaction keeps the relative order of the remaining entries.
	i := slices.Index(s.order, n)
	s.order = slices.Delete(s.order, i, i+1)
	delete(s.byPath, path)
	s.detach(vpath.Parent(path), n)
	return nil
}

// Rename changes the path of the entry at oldPath in place. The entry keeps
// its position in store order.
//
// It fails if newPath already exists or oldPath is absent, checked in that
// order. The new parent is not validated and descendants keep their old
// paths.
func (s *Store) Rename(oldPath, newPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newPath == "" {
		return errors.New(errors.CodeInvalidPath, "empty path")
	}
	if len(newPath) > MaxPathLen {
		return errors.WithContext(
			errors.Newf(errors.CodeCapacityExceeded, "path too long: %d characters (max %d)", len(newPath), MaxPathLen),
			"path", newPath,
		)
	}
	if _, ok := s.byPath[newPath]; ok {
		return errors.Newf(errors.CodeAlreadyExists, "already exists: %s", newPath)
	}
	n, ok := s.byPath[oldPath]
	if !ok {
		return errors.Newf(errors.CodeNotFound, "not found: %s", oldPath)
	}
	if vpath.IsRoot(oldPath) {
		return errors.New(errors.CodeInvalidPath, "cannot rename the root directory")
	}

	s.detach(vpath.Parent(oldPath), n)
	delete(s.byPath, oldPath)

	n.entry.Path = newPath
	s.byPath[newPath] = n
	if parent := vpath.Parent(newPath); parent != "" {
		s.attach(parent, n)
	}
	return nil
}

// Copy creates a file at dst holding the content src has now. Later changes
// to src do not affect dst.
//
// It fails if src is absent or a directory, and otherwise inherits every
// failure of CreateFile.
func (s *Store) Copy(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copy(src, dst)
}

func (s *Store) copy(src, dst string) error {
	n, ok := s.byPath[src]
	if !ok {
		return errors.Newf(errors.CodeNotFound, "not found: %s", src)
	}
	if n.entry.Kind != File {
		return errors.Newf(errors.CodeWrongKind, "not a file: %s", src)
	}
	return s.create(dst, File, n.entry.Content)
}

// Move copies src to dst and then deletes src. If the copy fails src is left
// untouched.
func (s *Store) Move(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.copy(src, dst); err != nil {
		return err
	}

	n := s.byPath[src]
	i := slices.Index(s.order, n)
	s.order = slices.Delete(s.order, i, i+1)
	delete(s.byPath, src)
	s.detach(vpath.Parent(src), n)
	return nil
}

// Find returns a copy of the entry at path. The path must be canonical.
func (s *Store) Find(path string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return n.entry.clone(), true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Entries returns a copy of every entry in store order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.order))
	for i, n := range s.order {
		out[i] = n.entry.clone()
	}
	return out
}

// Children returns the direct children of dir in store order. dir need not
// exist; orphaned entries are still reported.
func (s *Store) Children(dir string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.childrenOf(dir)
}

func (s *Store) childrenOf(dir string) []Entry {
	var out []Entry
	for _, n := range s.children[dir] {
		// The index groups by Parent(); the segment rule is stricter for
		// paths such as `\\` whose parent is the root.
		if vpath.IsDirectChild(dir, n.entry.Path) {
			out = append(out, n.entry.clone())
		}
	}
	return out
}

// HasDescendants reports whether any entry lies beneath dir at any depth.
// Orphans count: a grandchild whose parent was deleted still makes dir
// non-empty.
func (s *Store) HasDescendants(dir string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.order {
		if vpath.IsDescendant(dir, n.entry.Path) {
			return true
		}
	}
	return false
}

// attach files n under parent, keeping the group sorted by creation order.
func (s *Store) attach(parent string, n *node) {
	group := s.children[parent]
	i, _ := slices.BinarySearchFunc(group, n.seq, func(c *node, seq uint64) int {
		switch {
		case c.seq < seq:
			return -1
		case c.seq > seq:
			return 1
		default:
			return 0
		}
	})
	s.children[parent] = slices.Insert(group, i, n)
}

func (s *Store) detach(parent string, n *node) {
	group := s.children[parent]
	if i := slices.Index(group, n); i >= 0 {
		group = slices.Delete(group, i, i+1)
	}
	if len(group) == 0 {
		delete(s.children, parent)
		return
	}
	s.children[parent] = group
}
