// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: App contract and cell type shared by hosted apps and the tcell host.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is one styled character of an app's render buffer.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is a self-contained program that draws into a rectangle of cells.
// Run blocks until Stop is called. Render may be called from another
// goroutine at any time and returns a buffer sized by the last Resize.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	HandleKey(ev *tcell.EventKey)
	GetTitle() string
	SetRefreshNotifier(refreshChan chan<- bool)
}

// NewBuffer allocates a rows×cols buffer filled with blank default cells.
func NewBuffer(cols, rows int) [][]Cell {
	if cols <= 0 || rows <= 0 {
		return [][]Cell{}
	}
	buf := make([][]Cell, rows)
	for y := range buf {
		buf[y] = make([]Cell, cols)
	}
	ClearBuffer(buf)
	return buf
}

// ClearBuffer resets every cell to a blank with the default style.
func ClearBuffer(buf [][]Cell) {
	for y := range buf {
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
}
