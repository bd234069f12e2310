package keyboard

import (
	"github.com/janleigh/ms-dos-clone/errors"
)

// Encoder produces the set-1 byte sequence a keyboard sends for a logical
// key: the make code followed by its break code, wrapped in left-shift make
// and break when the character needs shift, and prefixed with 0xE0 for the
// arrow keys.
type Encoder struct {
	plain map[byte]byte
	shift map[byte]byte
}

// NewEncoder builds the reverse lookup tables.
func NewEncoder() *Encoder {
	e := &Encoder{
		plain: make(map[byte]byte),
		shift: make(map[byte]byte),
	}
	for code := len(unshifted) - 1; code >= 0; code-- {
		if c := unshifted[code]; c != 0 {
			e.plain[c] = byte(code)
		}
		if c := shifted[code]; c != 0 {
			e.shift[c] = byte(code)
		}
	}
	return e
}

// Char encodes one character. It reports false for characters no key
// produces.
func (e *Encoder) Char(c byte) ([]byte, bool) {
	if code, ok := e.plain[c]; ok {
		return []byte{code, code | releaseBit}, true
	}
	if code, ok := e.shift[c]; ok {
		return []byte{
			codeLeftShift,
			code, code | releaseBit,
			codeLeftShift | releaseBit,
		}, true
	}
	return nil, false
}

// Key encodes a non-character key. KeyChar and KeyNone encode to nothing.
func (e *Encoder) Key(k Key) []byte {
	switch k {
	case KeyEnter:
		return []byte{codeEnter, codeEnter | releaseBit}
	case KeyBackspace:
		return []byte{codeBackspace, codeBackspace | releaseBit}
	case KeyTab:
		return []byte{codeTab, codeTab | releaseBit}
	case KeyUp:
		return extended(codeUp)
	case KeyDown:
		return extended(codeDown)
	case KeyLeft:
		return extended(codeLeft)
	case KeyRight:
		return extended(codeRight)
	default:
		return nil
	}
}

// String encodes every character of s. It fails on the first character no
// key produces.
func (e *Encoder) String(s string) ([]byte, error) {
	var out []byte
	for i := 0; i < len(s); i++ {
		b, ok := e.Char(s[i])
		if !ok {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeInvalidInput, "no key produces %q", s[i]),
				"offset", i,
			)
		}
		out = append(out, b...)
	}
	return out, nil
}

func extended(code byte) []byte {
	return []byte{codeExtended, code, codeExtended, code | releaseBit}
}
