// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: donut/frame.go
// Summary: Glyph grid and depth buffer for a single rendered frame.

package donut

import (
	"image"
	"strings"
)

// Frame holds one rasterized picture of the torus. The depth buffer stores
// inverse depth, so zero means nothing has been drawn there yet.
type Frame struct {
	glyphs [Width * Height]byte
	depth  [Width * Height]float32
}

// NewFrame returns a blank frame.
func NewFrame() *Frame {
	f := &Frame{}
	f.Reset()
	return f
}

// Render rasterizes the torus rotated by a and b into a fresh frame.
func Render(a, b float32) *Frame {
	f := &Frame{}
	f.Draw(a, b)
	return f
}

// Reset blanks every glyph and zeroes the depth buffer.
func (f *Frame) Reset() {
	for i := range f.glyphs {
		f.glyphs[i] = Blank
	}
	clear(f.depth[:])
}

// Draw resets the frame and rasterizes the torus rotated by a and b into it.
func (f *Frame) Draw(a, b float32) {
	f.Reset()
	Sweep(a, b, func(s Sample) {
		if s.Visible() {
			f.plot(s)
		}
	})
}

// plot applies the depth test: the sample wins only when it is strictly
// nearer than whatever already occupies the cell.
func (f *Frame) plot(s Sample) bool {
	i := s.Index()
	if s.OOZ <= f.depth[i] {
		return false
	}
	f.depth[i] = s.OOZ
	f.glyphs[i] = Ramp[s.Shade]
	return true
}

func inGrid(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Glyph returns the character at (x, y), or Blank outside the grid.
func (f *Frame) Glyph(x, y int) byte {
	if !inGrid(x, y) {
		return Blank
	}
	return f.glyphs[x+Width*y]
}

// Depth returns the stored inverse depth at (x, y), or 0 outside the grid.
func (f *Frame) Depth(x, y int) float32 {
	if !inGrid(x, y) {
		return 0
	}
	return f.depth[x+Width*y]
}

// Row returns row y of the glyph grid. The slice aliases the frame and must
// not be modified.
func (f *Frame) Row(y int) []byte {
	if y < 0 || y >= Height {
		return nil
	}
	return f.glyphs[y*Width : (y+1)*Width : (y+1)*Width]
}

// Lit counts the cells that hold a glyph.
func (f *Frame) Lit() int {
	n := 0
	for _, g := range f.glyphs {
		if g != Blank {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every lit cell. It is
// empty when nothing was drawn.
func (f *Frame) Bounds() image.Rectangle {
	var r image.Rectangle
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.glyphs[x+Width*y] == Blank {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

// String renders the grid as Height newline-terminated lines of Width glyphs.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		sb.Write(f.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
