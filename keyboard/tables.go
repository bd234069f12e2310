package keyboard

// Set-1 make codes with special meaning to the translator.
const (
	codeExtended   = 0xE0
	codeLeftShift  = 0x2A
	codeRightShift = 0x36
	codeCtrl       = 0x1D
	codeEnter      = 0x1C
	codeBackspace  = 0x0E
	codeTab        = 0x0F

	codeUp    = 0x48
	codeDown  = 0x50
	codeLeft  = 0x4B
	codeRight = 0x4D

	releaseBit = 0x80
)

// unshifted maps make codes to characters with no modifier held.
// Zero means the code produces no character.
var unshifted = [128]byte{
	0, 0, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\b',
	'\t', 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n',
	0, 'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`', 0,
	'\\', 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', 0, '*', 0, ' ',
}

// shifted maps make codes to characters while shift is held.
var shifted = [128]byte{
	0, 0, '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', '\b',
	'\t', 'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '{', '}', '\n',
	0, 'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"', '~', 0,
	'|', 'Z', 'X', 'C', 'V', 'B', 'N', 'M', '<', '>', '?', 0, '*', 0, ' ',
}

// arrows maps the byte following 0xE0 to an arrow key.
var arrows = map[byte]Key{
	codeUp:    KeyUp,
	codeDown:  KeyDown,
	codeLeft:  KeyLeft,
	codeRight: KeyRight,
}
