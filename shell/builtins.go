package shell

import (
	"fmt"
	"strings"

	"github.com/janleigh/ms-dos-clone/cmdline"
	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/errors"
	"github.com/janleigh/ms-dos-clone/namespace"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// Version is reported by VER.
const Version = "0.1.1"

const copyright = "(c) Jan Leigh Munoz and Victor Alexander Ong. Licensed under MIT License."

// syntax prints a usage line and returns the missing-argument error.
func (s *Session) syntax(usage string) error {
	s.println("Syntax: " + usage)
	return errors.New(errors.CodeInvalidInput, "missing argument")
}

func (s *Session) resolve(token string) string {
	return vpath.Resolve(s.cwd, token)
}

func cmdVer(s *Session, _ cmdline.Line) error {
	s.println("OSteoporosis [Version " + Version + "]")
	s.println(copyright)
	return nil
}

func cmdCls(s *Session, _ cmdline.Line) error {
	s.surface.Clear()
	return nil
}

func cmdHelp(s *Session, _ cmdline.Line) error {
	s.println("Available commands:")
	for _, c := range s.commands.list {
		line := fmt.Sprintf("%-9s - %s", strings.ToUpper(c.name), c.help)
		if len(c.aliases) > 0 {
			line += " (" + strings.ToUpper(strings.Join(c.aliases, ", ")) + ")"
		}
		s.println(line)
	}
	return nil
}

func cmdDir(s *Session, l cmdline.Line) error {
	arg := l.Arg(0)
	dir := s.cwd
	if arg != "" {
		dir = vpath.Target(s.cwd, arg)
	} else {
		arg = s.cwd
	}

	listing, err := s.store.List(dir)
	if err != nil {
		if errors.HasCode(err, errors.CodeWrongKind) {
			s.println("Not a directory")
		} else {
			s.println("Directory not found: " + arg)
		}
		return err
	}

	s.println(" Directory of " + s.drive + listing.Dir)
	s.println("")
	for _, e := range listing.Entries {
		if e.Kind == namespace.Directory {
			s.println("<DIR>          " + e.Name)
			continue
		}
		s.println(fmt.Sprintf("%14d %s", e.Size, e.Name))
	}
	s.println("")
	s.println(fmt.Sprintf("%d File(s)    %d bytes", listing.Files, listing.Bytes))
	s.println(fmt.Sprintf("%d Dir(s)", listing.Dirs))
	return nil
}

func cmdType(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		return s.syntax("TYPE <filename>")
	}
	p := s.resolve(l.Arg(0))
	entry, ok := s.store.Find(p)
	if !ok {
		s.println("File not found: " + p)
		return errors.Newf(errors.CodeNotFound, "file not found: %s", p)
	}
	if entry.IsDir() {
		s.println("Cannot display directory contents")
		return errors.Newf(errors.CodeWrongKind, "not a file: %s", p)
	}
	s.println(string(entry.Content))
	return nil
}

// into applies the directory rule shared by COPY and MOVE: a destination
// that names an existing directory receives the source under its own name.
func (s *Session) into(src, dst string) string {
	if entry, ok := s.store.Find(dst); ok && entry.IsDir() {
		return vpath.Join(dst, vpath.Base(src))
	}
	return dst
}

func cmdCopy(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" || l.Arg(1) == "" {
		return s.syntax("COPY <source> <destination>")
	}
	src := s.resolve(l.Arg(0))

	var dst string
	if l.Arg(1) == vpath.Dotdot {
		dst = vpath.Join(vpath.Parent(s.cwd), vpath.Base(src))
	} else {
		dst = s.resolve(l.Arg(1))
	}
	dst = s.into(src, dst)

	if err := s.store.Copy(src, dst); err != nil {
		s.println("Copy failed")
		return err
	}
	s.println("        1 file(s) copied")
	return nil
}

func cmdRen(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" || l.Arg(1) == "" {
		return s.syntax("REN <oldname> <newname>")
	}
	if l.Arg(1) == vpath.Dotdot {
		s.println("Invalid destination name")
		return errors.New(errors.CodeInvalidPath, "invalid destination name")
	}
	if err := s.store.Rename(s.resolve(l.Arg(0)), s.resolve(l.Arg(1))); err != nil {
		s.println("Rename failed")
		return err
	}
	return nil
}

func cmdMove(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" || l.Arg(1) == "" {
		return s.syntax("MOVE <source> <destination>")
	}
	src := s.resolve(l.Arg(0))

	var dst string
	if l.Arg(1) == vpath.Dotdot {
		if dst = vpath.Parent(s.cwd); dst == "" {
			dst = vpath.Root
		}
	} else {
		dst = s.resolve(l.Arg(1))
	}
	dst = s.into(src, dst)

	if err := s.store.Move(src, dst); err != nil {
		s.println("Move failed")
		return err
	}
	s.println("        1 file(s) moved")
	return nil
}

func cmdDel(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		return s.syntax("DEL <filename>")
	}
	p := s.resolve(l.Arg(0))
	entry, ok := s.store.Find(p)
	if !ok {
		s.println("File not found: " + l.Arg(0))
		return errors.Newf(errors.CodeNotFound, "file not found: %s", p)
	}
	if entry.IsDir() {
		s.println("Cannot delete directory with DEL. Use RD instead.")
		return errors.Newf(errors.CodeWrongKind, "not a file: %s", p)
	}
	if err := s.store.Delete(p); err != nil {
		s.println("Delete failed")
		return err
	}
	return nil
}

func cmdMkdir(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		return s.syntax("MKDIR <dirname>")
	}
	if err := s.store.CreateDirectory(s.resolve(l.Arg(0))); err != nil {
		s.println("Failed to create directory")
		return err
	}
	return nil
}

func cmdRmdir(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		return s.syntax("RMDIR <dirname>")
	}
	p := s.resolve(l.Arg(0))
	entry, ok := s.store.Find(p)
	switch {
	case !ok:
		s.println("Directory not found: " + l.Arg(0))
		return errors.Newf(errors.CodeNotFound, "directory not found: %s", p)
	case !entry.IsDir():
		s.println("Not a directory")
		return errors.Newf(errors.CodeWrongKind, "not a directory: %s", p)
	case vpath.IsRoot(p):
		s.println("Cannot remove root directory")
		return errors.New(errors.CodeInvalidPath, "cannot remove root directory")
	case s.store.HasDescendants(p):
		s.println("Directory not empty")
		return errors.Newf(errors.CodeNotEmpty, "directory not empty: %s", p)
	}

	if err := s.store.Delete(p); err != nil {
		s.println("Failed to remove directory")
		return err
	}
	if s.cwd == p {
		if s.cwd = vpath.Parent(p); s.cwd == "" {
			s.cwd = vpath.Root
		}
	}
	return nil
}

func cmdCd(s *Session, l cmdline.Line) error {
	arg := l.Arg(0)
	if arg == "" {
		s.println(s.drive + s.cwd)
		return nil
	}
	if err := s.ChangeDir(arg); err != nil {
		if errors.HasCode(err, errors.CodeWrongKind) {
			s.println("Not a directory")
		} else {
			s.println("Directory not found: " + arg)
		}
		return err
	}
	return nil
}

func cmdEcho(s *Session, l cmdline.Line) error {
	switch l.Rest {
	case "ON":
		s.println("ECHO is on")
		return nil
	case "OFF":
		s.println("ECHO is off")
		return nil
	}
	s.println(unescape(l.Rest))
	return nil
}

// unescape expands \n, \t, \r and \\. Any other escape pair, and a
// trailing lone backslash, is kept as typed.
func unescape(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i+1 == len(text) {
			b.WriteByte(c)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(c)
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

func cmdTouch(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		return s.syntax("TOUCH <filename>")
	}
	p := s.resolve(l.Arg(0))
	if _, ok := s.store.Find(p); ok {
		s.println("File already exists")
		return errors.Newf(errors.CodeAlreadyExists, "file already exists: %s", p)
	}
	if err := s.store.CreateFile(p, nil); err != nil {
		s.println("Failed to create file")
		return err
	}
	s.println("Created empty file: " + l.Arg(0))
	return nil
}

func cmdColor(s *Session, l cmdline.Line) error {
	if l.Arg(0) == "" {
		s.surface.SetColor(s.fg, s.bg)
		return nil
	}
	fg, bg, err := display.ParseAttribute(l.Arg(0))
	if err != nil {
		s.println("Invalid color attribute: " + l.Arg(0))
		return err
	}
	s.surface.SetColor(fg, bg)
	return nil
}

func cmdColorTest(s *Session, _ cmdline.Line) error {
	fg, bg := s.surface.Color()
	for row := 0; row < 2; row++ {
		for i := 0; i < 8; i++ {
			s.surface.SetColor(display.Black, display.Color(row*8+i))
			s.surface.WriteString("   ")
		}
		s.surface.SetColor(fg, bg)
		s.surface.WriteChar('\n')
	}
	return nil
}

func cmdExit(s *Session, _ cmdline.Line) error {
	s.exited = true
	return nil
}
