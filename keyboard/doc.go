// Package keyboard decodes PC/AT set-1 scancodes into logical key events.
//
// Translate is a pure function over an explicit State, so decoding can be
// tested byte by byte without a device. Decoder wraps it for callers that
// just want to feed bytes. Source is the polling byte source the shell's
// driving loop consumes; Queue is an in-memory Source and Encoder turns
// logical keys back into the bytes a keyboard would produce.
package keyboard
