package ansi

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texeldonut/donut"
)

// ErrNotTerminal is returned by CheckSize when the output is not a terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

// CheckSize reports whether the terminal behind f can show a whole frame.
// It returns the terminal size it found.
func CheckSize(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	// One extra row for the trailing newline after the last grid row.
	if cols < donut.Width || rows < donut.Height+1 {
		return cols, rows, fmt.Errorf("terminal is %dx%d, frame needs %dx%d", cols, rows, donut.Width, donut.Height+1)
	}
	return cols, rows, nil
}
