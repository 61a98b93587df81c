package tui

import (
	"io"
	"sync"
)

// Bell is the eat cue: it rings the terminal bell on its writer.
// Write errors are ignored; a missed beep never affects the game.
//
// The writer is the program's output, which Bubble Tea's renderer also
// writes to from its own goroutine, and mu does not cover those writes.
// Each Play is a single one-byte Write, so it lands between the renderer's
// writes. Even if it ends up inside a frame, BEL moves no cursor and prints
// nothing, so the frame still draws correctly.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes a single BEL character. A nil Bell is silent.
func (b *Bell) Play() {
	if b == nil || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort cue
	b.w.Write([]byte{'\a'})
}
