package hostfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// FS is a host filesystem backed by go-billy.
type FS struct {
	bfs billy.Filesystem
}

// NewLocal returns a filesystem over the host directory root.
func NewLocal(root string) *FS {
	return &FS{bfs: osfs.New(root)}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// Wrap adapts an existing billy filesystem.
func Wrap(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// ReadDir returns the entries of the named directory sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	file, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether name exists and is a directory.
func (f *FS) IsDir(name string) (bool, error) {
	info, err := f.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// WriteFile writes data to the named file, creating parent directories.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if dir := filepath.Dir(name); dir != "." && dir != "/" {
		if err := f.bfs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(f.bfs, name, data, perm)
}

// MkdirAll creates a directory and any missing parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}
