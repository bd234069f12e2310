// Package terminal runs a shell session on a real terminal through tcell.
//
// Screen mirrors a display.Grid to a tcell screen each time it is flushed.
// Source turns tcell key events back into the scancode bytes a PC keyboard
// would send, so a session driven from a terminal goes through exactly the
// same translator and line editor as one driven from raw bytes.
package terminal
