package config

import (
	"context"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/errors"
)

//go:embed schema.cue
var schemaSource []byte

// ReadFS is the host filesystem access the loader needs. hostfs.FS
// satisfies it.
type ReadFS interface {
	ReadFile(name string) ([]byte, error)
}

// ValidationIssue describes one schema violation.
type ValidationIssue struct {
	Path    []string
	Message string
}

// Loader compiles configuration files against the embedded schema.
// It owns a CUE context; a Loader is not safe for concurrent use.
type Loader struct {
	fs     ReadFS
	cueCtx *cue.Context
	schema cue.Value
}

// NewLoader creates a loader reading through fsys, which may be nil when
// only Default and EncodeYAML are needed.
func NewLoader(fsys ReadFS) (*Loader, error) {
	cueCtx := cuecontext.New()
	compiled := cueCtx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := compiled.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "embedded configuration schema does not compile")
	}

	return &Loader{
		fs:     fsys,
		cueCtx: cueCtx,
		schema: compiled.LookupPath(cue.ParsePath("#Config")),
	}, nil
}

// Load reads, validates and decodes the configuration file at path.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapLoadErrorWithContext(err, "context cancelled", makeContext("file_path", path))
	}
	if l.fs == nil {
		return nil, errors.New(errors.CodeConfigLoadFailed, "no filesystem to load configuration from")
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, wrapLoadErrorWithContext(err, "failed to read configuration file", makeContext("file_path", path))
	}
	return l.LoadBytes(ctx, path, data)
}

// LoadBytes validates and decodes configuration source. name is used in
// error positions.
func (l *Loader) LoadBytes(ctx context.Context, name string, src []byte) (*Config, error) {
	value := l.cueCtx.CompileBytes(src, cue.Filename(name))
	if err := value.Err(); err != nil {
		return nil, wrapLoadErrorWithContext(err, "failed to compile configuration file", makeContext(
			"file_path", name,
			"details", cueerrors.Details(err, nil),
		))
	}
	return l.decode(ctx, name, value)
}

// Default returns the configuration the schema defaults describe.
func (l *Loader) Default(ctx context.Context) (*Config, error) {
	return l.decode(ctx, "<defaults>", l.cueCtx.CompileString("{}"))
}

func (l *Loader) decode(ctx context.Context, name string, data cue.Value) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapValidationErrorWithContext(err, "context cancelled", nil)
	}

	unified := l.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return nil, wrapValidationErrorWithContext(err, "configuration does not match schema", makeContext(
			"file_path", name,
			"details", cueerrors.Details(err, nil),
			"issues", extractValidationIssues(err),
		))
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, wrapDecodeErrorWithContext(err, "failed to decode configuration", makeContext("file_path", name))
	}

	// The schema restricts colors to palette names; parse them once so a
	// schema and palette mismatch surfaces here rather than at boot.
	if _, _, err := cfg.ColorPair(); err != nil {
		return nil, wrapValidationErrorWithContext(err, "invalid color", makeContext("file_path", name))
	}
	return &cfg, nil
}

// EncodeYAML renders cfg as YAML.
func (l *Loader) EncodeYAML(ctx context.Context, cfg *Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapEncodeError(err, "context cancelled before encoding")
	}
	if cfg == nil {
		return nil, errors.New(errors.CodeConfigEncodeFailed, "configuration cannot be nil")
	}

	value := l.cueCtx.Encode(cfg)
	if err := value.Err(); err != nil {
		return nil, wrapEncodeError(err, "failed to convert configuration to CUE")
	}

	data, err := cueyaml.Encode(value)
	if err != nil {
		return nil, wrapEncodeError(err, "failed to encode configuration to YAML")
	}
	return data, nil
}

// Palette returns the color names the schema accepts. It is the display
// palette; the two are kept in step by the schema tests.
func Palette() []string {
	return display.ColorNames()
}

func extractValidationIssues(err error) []ValidationIssue {
	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, ValidationIssue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}
