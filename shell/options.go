package shell

import (
	"github.com/janleigh/ms-dos-clone/config"
	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/lineedit"
	"github.com/janleigh/ms-dos-clone/logging"
)

// Defaults used when no configuration is applied.
const (
	DefaultDrive  = "C:"
	DefaultSuffix = "> "
)

// DefaultBanner is printed by Boot.
var DefaultBanner = []string{
	"MS-DOS Clone [Version 0.1.0]",
	"(c) Jan Leigh Munoz and Victor Alexander Ong. Licensed under MIT License.",
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt drive and suffix.
func WithPrompt(drive, suffix string) Option {
	return func(s *Session) {
		s.drive = drive
		s.suffix = suffix
	}
}

// WithBanner replaces the boot banner.
func WithBanner(lines []string) Option {
	return func(s *Session) {
		s.banner = append([]string(nil), lines...)
	}
}

// WithColors sets the default text colors. COLOR with no argument
// returns to them.
func WithColors(fg, bg display.Color) Option {
	return func(s *Session) {
		s.fg = fg
		s.bg = bg
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithEditorOptions passes options through to the line editor.
func WithEditorOptions(opts ...lineedit.Option) Option {
	return func(s *Session) {
		s.editorOpts = append(s.editorOpts, opts...)
	}
}

// ConfigOptions converts a loaded configuration into session options.
func ConfigOptions(cfg *config.Config) ([]Option, error) {
	fg, bg, err := cfg.ColorPair()
	if err != nil {
		return nil, err
	}
	return []Option{
		WithPrompt(cfg.Prompt.Drive, cfg.Prompt.Suffix),
		WithBanner(cfg.Banner),
		WithColors(fg, bg),
	}, nil
}
