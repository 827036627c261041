// Package vt510term provides a streaming, headless ANSI/VT terminal emulator
// engine: feed it raw bytes from a PTY or a recorded session and it maintains
// grid, cursor, and attribute state, returning only what changed.
//
// # Quick Start
//
//	term := vt510term.New(vt510term.WithSize(24, 80))
//	for _, ev := range term.Update([]byte("\x1b[31mHello\x1b[0m")) {
//	    if ev.Kind == vt510term.EventLineChanged {
//	        fmt.Println(ev.LineID, ev.Rendered)
//	    }
//	}
//
// # Architecture
//
// The package is organized around four components:
//
//   - [Tokenizer]: splits incoming bytes into text runs, C0 controls, and
//     complete escape-sequence tokens, resynchronizing on malformed input
//   - escape sequence decoding ([DecodeEscape]): turns one escape token into a
//     typed [DecodedEscape], including CSI and SGR parameter parsing
//   - [Terminal]: the grid/cursor/attribute state machine; [Terminal.Update]
//     is the only place input is applied (Reset, Resize and
//     SetCursorVisible are the other mutators)
//   - [RenderLine]: coalesces a line's cells into attribute-run HTML spans
//
// # Events
//
// [Terminal.Update] never returns an error or panics on malformed input; it
// reports everything through the [Event] slice it returns: [EventLineChanged]
// for rendered line deltas (oldest line id first), [EventResponse] for bytes
// the host should write back to the PTY (e.g. device-attribute replies), and
// [EventUnsupported] for syntactically valid but unrecognized sequences.
//
// # Providers
//
// [BellProvider] and [ScrollbackProvider] are host-injectable, with no-op and
// in-memory defaults respectively ([NoopBell], [MemoryScrollback]).
//
// # Thread Safety
//
// Terminal carries no internal locking. Update is synchronous and must be
// serialized by the caller if driven from multiple goroutines.
package vt510term
