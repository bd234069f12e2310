// Package cmdline tokenizes a committed command line.
package cmdline

import "strings"

// Line is a tokenized command line.
type Line struct {
	// Command is the first token as typed.
	Command string

	// Args holds the remaining space-separated tokens.
	Args []string

	// Rest is everything after the command and the single space that ends
	// it, unsplit. ECHO receives this instead of Args.
	Rest string
}

// Parse splits s on runs of spaces. Leading spaces are skipped. Only the
// space character separates tokens.
func Parse(s string) Line {
	s = strings.TrimLeft(s, " ")

	var l Line
	end := strings.IndexByte(s, ' ')
	if end < 0 {
		l.Command = s
		return l
	}
	l.Command = s[:end]
	l.Rest = s[end+1:]

	for _, f := range strings.Split(s[end+1:], " ") {
		if f != "" {
			l.Args = append(l.Args, f)
		}
	}
	return l
}

// Name returns the command folded to lower case for table lookup.
func (l Line) Name() string {
	return strings.ToLower(l.Command)
}

// Arg returns the i'th argument, or "" if there are fewer.
func (l Line) Arg(i int) string {
	if i < 0 || i >= len(l.Args) {
		return ""
	}
	return l.Args[i]
}

// Empty reports whether the line has no command.
func (l Line) Empty() bool {
	return l.Command == ""
}
