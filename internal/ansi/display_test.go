package ansi

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/framegrace/texeldonut/donut"
)

func TestAppendFrameLayout(t *testing.T) {
	f := donut.Render(0, 0)
	out := AppendFrame(nil, f)
	if len(out) != FrameSize {
		t.Fatalf("frame is %d bytes, want %d", len(out), FrameSize)
	}
	if !bytes.HasPrefix(out, []byte(CursorHome)) {
		t.Fatalf("frame does not start with cursor home: %q", out[:8])
	}

	body := string(out[len(CursorHome):])
	if !strings.HasPrefix(body, "\n") || !strings.HasSuffix(body, "\n") {
		t.Fatal("frame body must start and end with a newline")
	}
	lines := strings.Split(body[1:len(body)-1], "\n")
	if len(lines) != donut.Height {
		t.Fatalf("got %d rows, want %d", len(lines), donut.Height)
	}
	for y, line := range lines {
		want := string(f.Row(y)[1:])
		if line != want {
			t.Fatalf("row %d = %q, want %q", y, line, want)
		}
	}
}

func TestAppendFrameMatchesGridPicture(t *testing.T) {
	f := donut.Render(1, 1)
	out := string(AppendFrame(nil, f))
	// Restoring the never-lit column 0 gives back the plain grid.
	rows := strings.Split(strings.TrimPrefix(out, CursorHome+"\n"), "\n")
	var sb strings.Builder
	for _, r := range rows[:donut.Height] {
		sb.WriteString(" " + r + "\n")
	}
	if sb.String() != f.String() {
		t.Fatalf("wire picture differs from grid:\n%s\nvs\n%s", sb.String(), f.String())
	}
}

func TestDisplayClearAndPresent(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)
	if err := d.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := d.Present(donut.Render(0, 0)); err != nil {
		t.Fatalf("present: %v", err)
	}
	if err := d.Present(donut.Render(0.04, 0.02)); err != nil {
		t.Fatalf("present: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, ClearScreen+CursorHome) {
		t.Fatalf("unexpected prefix %q", out[:12])
	}
	if n := strings.Count(out, ClearScreen); n != 1 {
		t.Fatalf("clear sent %d times, want 1", n)
	}
	if n := strings.Count(out, CursorHome); n != 2 {
		t.Fatalf("cursor home sent %d times, want 2", n)
	}
	if len(out) != len(ClearScreen)+2*FrameSize {
		t.Fatalf("output is %d bytes, want %d", len(out), len(ClearScreen)+2*FrameSize)
	}
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write(p []byte) (int, error) { return 0, errBroken }

func TestDisplayWrapsWriteErrors(t *testing.T) {
	d := NewDisplay(failingWriter{})
	if err := d.Clear(); !errors.Is(err, errBroken) {
		t.Fatalf("clear error = %v", err)
	}
	if err := d.Present(donut.NewFrame()); !errors.Is(err, errBroken) {
		t.Fatalf("present error = %v", err)
	}
}

func TestCheckSizeRejectsPlainFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, _, err := CheckSize(f); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("CheckSize on a file = %v, want ErrNotTerminal", err)
	}
}
