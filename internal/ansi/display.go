// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ansi/display.go
// Summary: Streams rendered frames to a terminal with raw escape sequences.
// Usage: cmd/donut clears once, then presents one frame per tick.

package ansi

import (
	"fmt"
	"io"

	"github.com/framegrace/texeldonut/donut"
)

const (
	// ClearScreen erases the whole display. Sent once at startup.
	ClearScreen = "\x1b[2J"
	// CursorHome moves the cursor to the top-left cell. Sent before every frame.
	CursorHome = "\x1b[H"
)

// FrameSize is the number of bytes AppendFrame adds for one frame.
const FrameSize = len(CursorHome) + donut.Width*donut.Height + 1

// AppendFrame appends the wire form of f to dst: the cursor-home sequence,
// then every row introduced by a newline in place of its first column, then
// one trailing newline. Column 0 is never lit, so nothing visible is lost.
func AppendFrame(dst []byte, f *donut.Frame) []byte {
	dst = append(dst, CursorHome...)
	for y := 0; y < donut.Height; y++ {
		dst = append(dst, '\n')
		dst = append(dst, f.Row(y)[1:]...)
	}
	return append(dst, '\n')
}

// Display writes frames to a terminal in place, overwriting the previous one.
type Display struct {
	out io.Writer
	buf []byte
}

// NewDisplay wraps out, typically os.Stdout.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out, buf: make([]byte, 0, FrameSize)}
}

// Clear erases the screen.
func (d *Display) Clear() error {
	if _, err := io.WriteString(d.out, ClearScreen); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// Present writes f in a single write so the terminal never shows half a frame.
func (d *Display) Present(f *donut.Frame) error {
	d.buf = AppendFrame(d.buf[:0], f)
	if _, err := d.out.Write(d.buf); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
