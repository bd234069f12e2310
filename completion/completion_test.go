package completion

import (
	"testing"

	"github.com/janleigh/ms-dos-clone/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*namespace.Store, *string, *Engine) {
	t.Helper()
	s, err := namespace.NewSeeded(namespace.DefaultSeed())
	require.NoError(t, err)
	require.NoError(t, s.CreateDirectory(`\A`))
	require.NoError(t, s.CreateFile(`\A\FOO.TXT`, []byte("foo")))
	require.NoError(t, s.CreateFile(`\A\FOOBAR.TXT`, []byte("foobar")))

	cwd := `\A`
	return s, &cwd, New(s, func() string { return cwd })
}

func TestEngine_Determinism(t *testing.T) {
	s, _, e := setup(t)

	_, ok := e.Complete("type foo")
	assert.False(t, ok, "two candidates must not complete")

	require.NoError(t, s.Delete(`\A\FOOBAR.TXT`))
	got, ok := e.Complete("type foo")
	require.True(t, ok)
	assert.Equal(t, "type FOO.TXT", got)
}

func TestEngine_Complete(t *testing.T) {
	tests := []struct {
		name   string
		cwd    string
		line   string
		want   string
		wantOK bool
	}{
		{name: "no argument", cwd: `\`, line: "type", wantOK: false},
		{name: "trailing space only", cwd: `\`, line: "type ", wantOK: false},
		{name: "file from root", cwd: `\`, line: "type rea", want: "type README.TXT", wantOK: true},
		{name: "case folding", cwd: `\`, line: "CAT Ver", want: "CAT VERSION.TXT", wantOK: true},
		{name: "files only skips dirs", cwd: `\`, line: "type m", wantOK: false},
		{name: "dirs only", cwd: `\`, line: "cd mu", want: "cd MUSIC", wantOK: true},
		{name: "dirs only skips files", cwd: `\`, line: "cd rea", wantOK: false},
		{name: "unknown command matches any", cwd: `\`, line: "foo mu", want: "foo MUSIC", wantOK: true},
		{name: "absolute outside cwd", cwd: `\A`, line: `type \READ`, want: `type \README.TXT`, wantOK: true},
		{name: "absolute under cwd is relative", cwd: `\A`, line: `type \a\foob`, want: "type FOOBAR.TXT", wantOK: true},
		{name: "last argument of several", cwd: `\`, line: "copy   x.txt  lic", want: "copy x.txt LICENSE.TXT", wantOK: true},
		{name: "nested relative", cwd: `\`, line: `type a\foob`, want: `type A\FOOBAR.TXT`, wantOK: true},
		{name: "no match", cwd: `\`, line: "type zzz", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cwd, e := setup(t)
			*cwd = tt.cwd

			got, ok := e.Complete(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEngine_Matches(t *testing.T) {
	_, _, e := setup(t)
	assert.Equal(t, []string{`\A\FOO.TXT`, `\A\FOOBAR.TXT`}, e.Matches("TYPE", "f"))
	assert.Empty(t, e.Matches("cd", "f"))
}
