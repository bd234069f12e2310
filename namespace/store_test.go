package namespace

import (
	"fmt"
	"strings"
	"testing"

	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRooted(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.CreateDirectory(`\`))
	return s
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestStore_CreateDirectory(t *testing.T) {
	tests := []struct {
		name     string
		setup    []string
		path     string
		wantCode errors.ErrorCode
	}{
		{name: "top level", path: `\A`},
		{name: "nested with parent", setup: []string{`\A`}, path: `\A\B`},
		{name: "missing parent", path: `\A\B`, wantCode: errors.CodeNotFound},
		{name: "duplicate", setup: []string{`\A`}, path: `\A`, wantCode: errors.CodeAlreadyExists},
		{name: "duplicate root", path: `\`, wantCode: errors.CodeAlreadyExists},
		{name: "relative path", path: "A", wantCode: errors.CodeInvalidPath},
		{name: "empty path", path: "", wantCode: errors.CodeInvalidPath},
		{name: "path too long", path: `\` + strings.Repeat("X", MaxPathLen), wantCode: errors.CodeCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRooted(t)
			for _, p := range tt.setup {
				require.NoError(t, s.CreateDirectory(p))
			}

			err := s.CreateDirectory(tt.path)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}

			require.NoError(t, err)
			e, ok := s.Find(tt.path)
			require.True(t, ok)
			assert.Equal(t, Directory, e.Kind)
			assert.Zero(t, e.Size)
			assert.Empty(t, e.Content)
		})
	}
}

func TestStore_CreateFile(t *testing.T) {
	t.Run("stores a copy of content", func(t *testing.T) {
		s := newRooted(t)
		data := []byte("hello")
		require.NoError(t, s.CreateFile(`\A.TXT`, data))

		data[0] = 'J'
		e, ok := s.Find(`\A.TXT`)
		require.True(t, ok)
		assert.Equal(t, "hello", string(e.Content))
		assert.Equal(t, 5, e.Size)
		assert.Equal(t, File, e.Kind)
	})

	t.Run("parent must exist", func(t *testing.T) {
		s := newRooted(t)
		err := s.CreateFile(`\NOPE\A.TXT`, nil)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("parent must be a directory", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A.TXT`, nil))
		err := s.CreateFile(`\A.TXT\B.TXT`, nil)
		assert.Equal(t, errors.CodeWrongKind, errors.GetCode(err))
	})

	t.Run("content bound", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\MAX.TXT`, make([]byte, MaxContentLen)))
		err := s.CreateFile(`\BIG.TXT`, make([]byte, MaxContentLen+1))
		assert.Equal(t, errors.CodeCapacityExceeded, errors.GetCode(err))
	})

	t.Run("path bound is inclusive", func(t *testing.T) {
		s := newRooted(t)
		p := `\` + strings.Repeat("X", MaxPathLen-1)
		require.NoError(t, s.CreateFile(p, nil))
	})

	t.Run("entry bound", func(t *testing.T) {
		s := newRooted(t)
		for i := 1; i < MaxEntries; i++ {
			require.NoError(t, s.CreateFile(fmt.Sprintf(`\F%d`, i), nil))
		}
		assert.Equal(t, MaxEntries, s.Len())

		err := s.CreateFile(`\ONEMORE`, nil)
		assert.Equal(t, errors.CodeCapacityExceeded, errors.GetCode(err))
		assert.Equal(t, MaxEntries, s.Len())
	})

	t.Run("failures are user errors", func(t *testing.T) {
		s := newRooted(t)
		err := s.CreateFile(`\X\Y`, nil)
		assert.False(t, errors.IsFatal(err))
	})
}

func TestStore_ParentExistenceAtCreation(t *testing.T) {
	s := newRooted(t)

	require.Error(t, s.CreateDirectory(`\A\B`))
	require.NoError(t, s.CreateDirectory(`\A`))
	require.NoError(t, s.CreateDirectory(`\A\B`))
}

func TestStore_Delete(t *testing.T) {
	t.Run("compacts preserving order", func(t *testing.T) {
		s := newRooted(t)
		for _, p := range []string{`\A`, `\B`, `\C`, `\D`} {
			require.NoError(t, s.CreateDirectory(p))
		}

		require.NoError(t, s.Delete(`\B`))
		assert.Equal(t, []string{`\`, `\A`, `\C`, `\D`}, paths(s.Entries()))
		assert.Equal(t, []string{`\A`, `\C`, `\D`}, paths(s.Children(`\`)))
	})

	t.Run("absent path", func(t *testing.T) {
		s := newRooted(t)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(s.Delete(`\NOPE`)))
	})

	t.Run("root is protected", func(t *testing.T) {
		s := newRooted(t)
		assert.Equal(t, errors.CodeInvalidPath, errors.GetCode(s.Delete(`\`)))
		_, ok := s.Find(`\`)
		assert.True(t, ok)
	})

	t.Run("does not cascade", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\A`))
		require.NoError(t, s.CreateFile(`\A\F`, []byte("x")))

		require.NoError(t, s.Delete(`\A`))

		_, ok := s.Find(`\A`)
		assert.False(t, ok)
		e, ok := s.Find(`\A\F`)
		require.True(t, ok)
		assert.Equal(t, "x", string(e.Content))
		assert.True(t, s.HasDescendants(`\A`))
	})

	t.Run("orphans re-attach when parent is re-created", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\A`))
		require.NoError(t, s.CreateFile(`\A\F`, nil))
		require.NoError(t, s.Delete(`\A`))

		require.NoError(t, s.CreateDirectory(`\A`))
		l, err := s.List(`\A`)
		require.NoError(t, err)
		require.Len(t, l.Entries, 2)
		assert.Equal(t, "F", l.Entries[1].Name)
	})
}

func TestStore_Rename(t *testing.T) {
	t.Run("in place keeps order", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A.TXT`, []byte("a")))
		require.NoError(t, s.CreateFile(`\B.TXT`, nil))

		require.NoError(t, s.Rename(`\A.TXT`, `\Z.TXT`))
		assert.Equal(t, []string{`\`, `\Z.TXT`, `\B.TXT`}, paths(s.Entries()))

		e, ok := s.Find(`\Z.TXT`)
		require.True(t, ok)
		assert.Equal(t, "a", string(e.Content))
		_, ok = s.Find(`\A.TXT`)
		assert.False(t, ok)
	})

	t.Run("moves between directories", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\D`))
		require.NoError(t, s.CreateFile(`\F`, nil))

		require.NoError(t, s.Rename(`\F`, `\D\F`))
		assert.Equal(t, []string{`\D`}, paths(s.Children(`\`)))
		assert.Equal(t, []string{`\D\F`}, paths(s.Children(`\D`)))
	})

	t.Run("collision checked before absence", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\B`, nil))

		err := s.Rename(`\MISSING`, `\B`)
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
	})

	t.Run("absent source", func(t *testing.T) {
		s := newRooted(t)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(s.Rename(`\A`, `\B`)))
	})

	t.Run("new parent is not validated", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A`, nil))

		require.NoError(t, s.Rename(`\A`, `\NOWHERE\A`))
		_, ok := s.Find(`\NOWHERE\A`)
		assert.True(t, ok)
	})

	t.Run("descendants keep their paths", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\A`))
		require.NoError(t, s.CreateFile(`\A\F`, nil))

		require.NoError(t, s.Rename(`\A`, `\B`))
		_, ok := s.Find(`\A\F`)
		assert.True(t, ok)
		assert.Empty(t, s.Children(`\B`))
	})

	t.Run("root is protected", func(t *testing.T) {
		s := newRooted(t)
		assert.Equal(t, errors.CodeInvalidPath, errors.GetCode(s.Rename(`\`, `\X`)))
	})
}

func TestStore_UniquenessUnderCreateAndRename(t *testing.T) {
	s := newRooted(t)
	ops := []func() error{
		func() error { return s.CreateFile(`\A`, nil) },
		func() error { return s.CreateFile(`\A`, nil) },
		func() error { return s.CreateDirectory(`\B`) },
		func() error { return s.Rename(`\A`, `\B`) },
		func() error { return s.Rename(`\A`, `\C`) },
		func() error { return s.CreateFile(`\A`, nil) },
		func() error { return s.Rename(`\C`, `\A`) },
	}
	for _, op := range ops {
		_ = op()

		seen := map[string]bool{}
		for _, p := range paths(s.Entries()) {
			require.False(t, seen[p], "duplicate path %s", p)
			seen[p] = true
		}
	}
}

func TestStore_Copy(t *testing.T) {
	t.Run("round trip is a snapshot", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A`, []byte("original")))
		require.NoError(t, s.Copy(`\A`, `\B`))

		require.NoError(t, s.Delete(`\A`))
		require.NoError(t, s.CreateFile(`\A`, []byte("changed")))

		e, ok := s.Find(`\B`)
		require.True(t, ok)
		assert.Equal(t, "original", string(e.Content))
	})

	t.Run("directory source", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\D`))
		assert.Equal(t, errors.CodeWrongKind, errors.GetCode(s.Copy(`\D`, `\E`)))
	})

	t.Run("absent source", func(t *testing.T) {
		s := newRooted(t)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(s.Copy(`\A`, `\B`)))
	})

	t.Run("inherits create failures", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A`, nil))
		require.NoError(t, s.CreateFile(`\B`, nil))
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(s.Copy(`\A`, `\B`)))
	})
}

func TestStore_Move(t *testing.T) {
	t.Run("success removes source", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateDirectory(`\D`))
		require.NoError(t, s.CreateFile(`\A`, []byte("x")))

		require.NoError(t, s.Move(`\A`, `\D\A`))
		_, ok := s.Find(`\A`)
		assert.False(t, ok)
		e, ok := s.Find(`\D\A`)
		require.True(t, ok)
		assert.Equal(t, "x", string(e.Content))
	})

	t.Run("collision leaves source untouched", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A`, []byte("src")))
		require.NoError(t, s.CreateFile(`\B`, []byte("dst")))

		err := s.Move(`\A`, `\B`)
		require.Error(t, err)
		e, ok := s.Find(`\A`)
		require.True(t, ok)
		assert.Equal(t, "src", string(e.Content))
		e, _ = s.Find(`\B`)
		assert.Equal(t, "dst", string(e.Content))
	})

	t.Run("missing destination parent leaves source untouched", func(t *testing.T) {
		s := newRooted(t)
		require.NoError(t, s.CreateFile(`\A`, []byte("src")))

		err := s.Move(`\A`, `\NOPE\A`)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
		_, ok := s.Find(`\A`)
		assert.True(t, ok)
		assert.Equal(t, 2, s.Len())
	})
}

func TestStore_FindReturnsCopy(t *testing.T) {
	s := newRooted(t)
	require.NoError(t, s.CreateFile(`\A`, []byte("abc")))

	e, _ := s.Find(`\A`)
	e.Content[0] = 'X'
	e.Path = `\B`

	again, ok := s.Find(`\A`)
	require.True(t, ok)
	assert.Equal(t, "abc", string(again.Content))
}

func TestStore_HasDescendants(t *testing.T) {
	s := newRooted(t)
	require.NoError(t, s.CreateDirectory(`\A`))
	require.NoError(t, s.CreateDirectory(`\AB`))
	assert.False(t, s.HasDescendants(`\A`))

	require.NoError(t, s.CreateDirectory(`\A\B`))
	require.NoError(t, s.CreateFile(`\A\B\C`, nil))
	require.NoError(t, s.Delete(`\A\B`))
	assert.True(t, s.HasDescendants(`\A`), "orphaned grandchild keeps the directory non-empty")
}
