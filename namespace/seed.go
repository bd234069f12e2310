package namespace

import (
	"embed"
	"path"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/vpath"
)

//go:embed seed/*.TXT
var seedFS embed.FS

// defaultDirectories are created below the root, in this order, at boot.
var defaultDirectories = []string{
	`\SYSTEM`,
	`\DOCUMENTS`,
	`\PICTURES`,
	`\MUSIC`,
	`\VIDEOS`,
}

// defaultFiles names the embedded seed files in creation order.
var defaultFiles = []string{"README.TXT", "VERSION.TXT", "LICENSE.TXT"}

// SeedFile is a file created at boot.
type SeedFile struct {
	Path    string
	Content []byte
}

// Seed describes the initial contents of a store. The root is always
// created first and need not be listed.
type Seed struct {
	Directories []string
	Files       []SeedFile
}

// DefaultSeed returns the standard boot contents: the root, five top-level
// directories and three text files.
func DefaultSeed() Seed {
	s := Seed{Directories: append([]string(nil), defaultDirectories...)}
	for _, name := range defaultFiles {
		data, err := seedFS.ReadFile(path.Join("seed", name))
		if err != nil {
			// The files are embedded at build time.
			panic(err)
		}
		s.Files = append(s.Files, SeedFile{Path: vpath.Join(vpath.Root, name), Content: data})
	}
	return s
}

// ApplySeed creates the root (if missing), then the seed directories, then
// the seed files. It stops at the first failure, which is reported as fatal
// with the offending path attached.
func (s *Store) ApplySeed(seed Seed) error {
	if _, ok := s.Find(vpath.Root); !ok {
		if err := s.CreateDirectory(vpath.Root); err != nil {
			return seedError(err, vpath.Root)
		}
	}
	for _, dir := range seed.Directories {
		if vpath.IsRoot(dir) {
			continue
		}
		if err := s.CreateDirectory(dir); err != nil {
			return seedError(err, dir)
		}
	}
	for _, f := range seed.Files {
		if err := s.CreateFile(f.Path, f.Content); err != nil {
			return seedError(err, f.Path)
		}
	}
	return nil
}

// NewSeeded returns a store populated with seed.
func NewSeeded(seed Seed) (*Store, error) {
	s := New()
	if err := s.ApplySeed(seed); err != nil {
		return nil, err
	}
	return s, nil
}

func seedError(err error, p string) error {
	err = errors.Wrapf(err, errors.GetCode(err), "failed to seed %s", p)
	err = errors.WithContext(err, "path", p)
	return errors.WithClassification(err, errors.ClassificationFatal)
}
