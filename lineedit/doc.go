// Package lineedit turns key events into committed command lines.
//
// An Editor owns the input buffer and a History ring and echoes every edit
// to a display.Surface. Invalid input is absorbed: a full buffer ignores
// further characters, backspace on an empty line does nothing, history
// navigation clamps at both ends and an ambiguous completion leaves the line
// alone. Nothing in this package returns an error.
package lineedit
