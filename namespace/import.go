package namespace

import (
	"io/fs"
	"path"
	"strings"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// SourceFS is the read side of a host filesystem. embed.FS satisfies it, as
// does hostfs.FS.
type SourceFS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}

// Import copies the tree rooted at root in src into the store beneath dst.
//
// Names are upper-cased. Every entry goes through CreateDirectory or
// CreateFile, so all store bounds apply. A directory that already exists is
// reused; any other failure stops the import and is reported as fatal with
// the offending store path attached.
func (s *Store) Import(src SourceFS, root, dst string) (int, error) {
	return s.importDir(src, root, dst)
}

func (s *Store) importDir(src SourceFS, dir, dst string) (int, error) {
	entries, err := src.ReadDir(dir)
	if err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeIO, "failed to read host directory", map[string]interface{}{
			"host_path": dir,
		})
	}

	imported := 0
	for _, de := range entries {
		hostPath := path.Join(dir, de.Name())
		target := vpath.Join(dst, strings.ToUpper(de.Name()))

		if de.IsDir() {
			if e, ok := s.Find(target); !ok || !e.IsDir() {
				if err := s.CreateDirectory(target); err != nil {
					return imported, importError(err, target)
				}
				imported++
			}
			n, err := s.importDir(src, hostPath, target)
			imported += n
			if err != nil {
				return imported, err
			}
			continue
		}

		data, err := src.ReadFile(hostPath)
		if err != nil {
			return imported, errors.WrapWithContext(err, errors.CodeIO, "failed to read host file", map[string]interface{}{
				"host_path": hostPath,
			})
		}
		if err := s.CreateFile(target, data); err != nil {
			return imported, importError(err, target)
		}
		imported++
	}
	return imported, nil
}

func importError(err error, p string) error {
	err = errors.Wrapf(err, errors.GetCode(err), "failed to import %s", p)
	err = errors.WithContext(err, "path", p)
	return errors.WithClassification(err, errors.ClassificationFatal)
}
