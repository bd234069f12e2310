package shell

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/janleigh/ms-dos-clone/cmdline"
	"github.com/janleigh/ms-dos-clone/completion"
	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/keyboard"
	"github.com/janleigh/ms-dos-clone/lineedit"
	"github.com/janleigh/ms-dos-clone/logging"
	"github.com/janleigh/ms-dos-clone/namespace"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// Session is one interactive shell. It is driven from a single goroutine.
type Session struct {
	id       string
	store    *namespace.Store
	surface  display.Surface
	editor   *lineedit.Editor
	decoder  keyboard.Decoder
	logger   *logging.Logger
	commands *table

	editorOpts []lineedit.Option

	cwd           string
	drive, suffix string
	banner        []string
	fg, bg        display.Color

	// ctx is the context of the Run or Execute call in progress; it only
	// reaches the logger.
	ctx    context.Context
	exited bool
}

// New returns a session over store drawing on surface. The current
// directory starts at the root.
func New(store *namespace.Store, surface display.Surface, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		store:    store,
		surface:  surface,
		commands: builtins(),
		cwd:      vpath.Root,
		drive:    DefaultDrive,
		suffix:   DefaultSuffix,
		banner:   DefaultBanner,
		fg:       display.LightGrey,
		bg:       display.Black,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	s.logger = s.logger.WithSession(s.id)

	engine := completion.New(store, s.Cwd)
	editorOpts := append([]lineedit.Option{lineedit.WithCompleter(engine)}, s.editorOpts...)
	s.editor = lineedit.New(surface, s.dispatch, editorOpts...)
	return s
}

// ID returns the session id attached to every log line.
func (s *Session) ID() string {
	return s.id
}

// Cwd returns the current directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Store returns the session's namespace.
func (s *Session) Store() *namespace.Store {
	return s.store
}

// Editor returns the session's line editor.
func (s *Session) Editor() *lineedit.Editor {
	return s.editor
}

// Exited reports whether EXIT has been run.
func (s *Session) Exited() bool {
	return s.exited
}

// Prompt returns the prompt text: drive, current directory and suffix.
func (s *Session) Prompt() string {
	return s.drive + s.cwd + s.suffix
}

// ChangeDir makes token the current directory. The bare separator names
// the root and ".." the parent; anything else is resolved against the
// current directory. The target must be an existing directory, otherwise
// the current directory is left unchanged.
func (s *Session) ChangeDir(token string) error {
	target := vpath.Target(s.cwd, token)
	entry, ok := s.store.Find(target)
	if !ok {
		return errors.WithContext(
			errors.Newf(errors.CodeNotFound, "directory not found: %s", token),
			"path", target,
		)
	}
	if !entry.IsDir() {
		return errors.WithContext(
			errors.Newf(errors.CodeWrongKind, "not a directory: %s", token),
			"path", target,
		)
	}
	s.cwd = target
	return nil
}

// Boot sets the default colors, prints the banner and a blank line, and
// shows the first prompt.
func (s *Session) Boot() {
	s.surface.SetColor(s.fg, s.bg)
	for _, line := range s.banner {
		display.WriteLine(s.surface, line)
	}
	s.surface.WriteChar('\n')
	s.showPrompt()
}

// Execute types line at the prompt and presses Enter. The line is echoed
// and recorded in history exactly as if it had been keyed in.
func (s *Session) Execute(ctx context.Context, line string) {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()
	s.editor.Submit(line)
}

func (s *Session) showPrompt() {
	s.surface.WriteString(s.Prompt())
}

// dispatch runs one committed line and shows the next prompt. Empty lines
// only re-prompt. Commands are logged under their primary name.
func (s *Session) dispatch(line string) {
	l := cmdline.Parse(line)
	if l.Empty() {
		s.showPrompt()
		return
	}

	name := l.Name()
	start := time.Now()
	var err error
	if cmd, ok := s.commands.lookup(name); ok {
		name = cmd.name
		err = cmd.run(s, l)
	} else {
		err = s.badCommand(name)
	}
	logging.LogCommand(s.ctx, s.logger, name, time.Since(start), err)

	if !s.exited {
		s.showPrompt()
	}
}

func (s *Session) println(line string) {
	display.WriteLine(s.surface, line)
}
