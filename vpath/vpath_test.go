package vpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		elem string
		want string
	}{
		{name: "root", dir: `\`, elem: "A.TXT", want: `\A.TXT`},
		{name: "nested", dir: `\DOCS`, elem: "A.TXT", want: `\DOCS\A.TXT`},
		{name: "trailing separator", dir: `\DOCS\`, elem: "A.TXT", want: `\DOCS\A.TXT`},
		{name: "empty dir", dir: "", elem: "A", want: `\A`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.dir, tt.elem))
		})
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: `\A\B`, want: `\A`},
		{path: `\A`, want: `\`},
		{path: `\`, want: `\`},
		{path: `\\`, want: `\`},
		{path: "A", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Parent(tt.path))
		})
	}
}

func TestBase(t *testing.T) {
	assert.Equal(t, "C.TXT", Base(`\A\B\C.TXT`))
	assert.Equal(t, "A", Base(`\A`))
	assert.Equal(t, "X", Base("X"))
	assert.Equal(t, "", Base(`\`))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		cwd   string
		token string
		want  string
	}{
		{name: "absolute verbatim", cwd: `\DOCS`, token: `\MUSIC\X`, want: `\MUSIC\X`},
		{name: "relative at root", cwd: `\`, token: "README.TXT", want: `\README.TXT`},
		{name: "relative nested", cwd: `\DOCS`, token: "A.TXT", want: `\DOCS\A.TXT`},
		{name: "parent token is literal", cwd: `\DOCS`, token: "..", want: `\DOCS\..`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.cwd, tt.token))
		})
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name  string
		cwd   string
		token string
		want  string
	}{
		{name: "separator goes to root", cwd: `\A\B`, token: `\`, want: `\`},
		{name: "up at root is no-op", cwd: `\`, token: "..", want: `\`},
		{name: "up to root", cwd: `\A`, token: "..", want: `\`},
		{name: "up one level", cwd: `\A\B`, token: "..", want: `\A`},
		{name: "relative", cwd: `\A`, token: "B", want: `\A\B`},
		{name: "absolute", cwd: `\A`, token: `\C`, want: `\C`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Target(tt.cwd, tt.token))
		})
	}
}

func TestIsDirectChild(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want bool
	}{
		{name: "root itself", dir: `\`, path: `\`, want: false},
		{name: "root child", dir: `\`, path: `\A`, want: true},
		{name: "root grandchild", dir: `\`, path: `\A\B`, want: false},
		{name: "double separator under root", dir: `\`, path: `\\`, want: false},
		{name: "child", dir: `\A`, path: `\A\B`, want: true},
		{name: "grandchild", dir: `\A`, path: `\A\B\C`, want: false},
		{name: "dir itself", dir: `\A`, path: `\A`, want: false},
		{name: "sibling sharing prefix", dir: `\A`, path: `\AB`, want: false},
		{name: "unrelated", dir: `\A`, path: `\B\C`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDirectChild(tt.dir, tt.path))
		})
	}
}

func TestChildName(t *testing.T) {
	assert.Equal(t, "A", ChildName(`\`, `\A`))
	assert.Equal(t, "B.TXT", ChildName(`\A`, `\A\B.TXT`))
}

func TestIsDescendant(t *testing.T) {
	assert.True(t, IsDescendant(`\A`, `\A\B`))
	assert.True(t, IsDescendant(`\A`, `\A\B\C`))
	assert.False(t, IsDescendant(`\A`, `\A`))
	assert.False(t, IsDescendant(`\A`, `\AB`))
	assert.True(t, IsDescendant(`\`, `\A`))
	assert.False(t, IsDescendant(`\`, `\`))
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold(`\A\FOO.TXT`, `\a\foo`))
	assert.True(t, HasPrefixFold("ABC", ""))
	assert.False(t, HasPrefixFold("AB", "ABC"))
	assert.False(t, HasPrefixFold(`\A\FOO`, `\a\fx`))
}
