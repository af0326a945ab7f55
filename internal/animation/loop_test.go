package animation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/framegrace/texeldonut/donut"
)

type recorder struct {
	clears     int
	frames     []donut.Frame
	presentErr error
	onPresent  func()
}

func (r *recorder) Clear() error {
	r.clears++
	return nil
}

func (r *recorder) Present(f *donut.Frame) error {
	if r.presentErr != nil {
		return r.presentErr
	}
	r.frames = append(r.frames, *f)
	if r.onPresent != nil {
		r.onPresent()
	}
	return nil
}

func TestSpinAdvance(t *testing.T) {
	var s Spin
	s.Advance()
	if s.A != DeltaA || s.B != DeltaB {
		t.Fatalf("spin after one frame = %+v", s)
	}
	s.Advance()
	if s.A != DeltaA+DeltaA || s.B != DeltaB+DeltaB {
		t.Fatalf("spin after two frames = %+v", s)
	}
}

func TestLoopDrawsFramesInOrder(t *testing.T) {
	rec := &recorder{}
	var sleeps []time.Duration
	loop := &Loop{
		Display: rec,
		Frames:  4,
		Sleep:   func(d time.Duration) { sleeps = append(sleeps, d) },
	}
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if rec.clears != 1 {
		t.Fatalf("clear called %d times, want 1", rec.clears)
	}
	if len(rec.frames) != 4 {
		t.Fatalf("presented %d frames, want 4", len(rec.frames))
	}
	if len(sleeps) != 4 {
		t.Fatalf("slept %d times, want 4", len(sleeps))
	}
	for _, d := range sleeps {
		if d != FrameDelay {
			t.Fatalf("slept %v, want %v", d, FrameDelay)
		}
	}

	var spin Spin
	for i, got := range rec.frames {
		want := donut.Render(spin.A, spin.B)
		if got != *want {
			t.Fatalf("frame %d does not match a fresh render at A=%v B=%v", i, spin.A, spin.B)
		}
		spin.Advance()
	}
	if loop.Spin != spin {
		t.Fatalf("final spin = %+v, want %+v", loop.Spin, spin)
	}
}

func TestLoopFirstFrameIsUnrotated(t *testing.T) {
	rec := &recorder{}
	loop := &Loop{Display: rec, Frames: 1, Sleep: func(time.Duration) {}}
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if rec.frames[0] != *donut.Render(0, 0) {
		t.Fatal("first frame should be rendered at A=0 B=0")
	}
}

func TestLoopStopsOnPresentError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{presentErr: boom}
	loop := &Loop{Display: rec, Sleep: func(time.Duration) {}}
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("run error = %v, want %v", err, boom)
	}
	if loop.Spin != (Spin{}) {
		t.Fatalf("spin advanced past a failed frame: %+v", loop.Spin)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	rec.onPresent = func() {
		if len(rec.frames) == 3 {
			cancel()
		}
	}
	loop := &Loop{Display: rec, Sleep: func(time.Duration) {}}
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rec.frames) != 3 {
		t.Fatalf("presented %d frames after cancel, want 3", len(rec.frames))
	}
}
