// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/animation/loop.go
// Summary: Drives the render, advance, sleep cycle of the spinning torus.
// Usage: cmd/donut runs a Loop forever; the donut app reuses Spin on its own ticker.

package animation

import (
	"context"
	"time"

	"github.com/framegrace/texeldonut/donut"
)

const (
	// DeltaA and DeltaB are the per-frame rotation increments in radians.
	DeltaA float32 = 0.04
	DeltaB float32 = 0.02

	// FrameDelay is the pause between two frames.
	FrameDelay = 15 * time.Millisecond
)

// Spin is the rotation state. The angles grow without bound and wrap through
// the periodicity of sin and cos.
type Spin struct {
	A, B float32
}

// Advance moves the rotation on by one frame.
func (s *Spin) Advance() {
	s.A += DeltaA
	s.B += DeltaB
}

// Presenter shows frames somewhere.
type Presenter interface {
	Clear() error
	Present(f *donut.Frame) error
}

// Loop renders frames into a Presenter until it is told to stop.
type Loop struct {
	Display Presenter
	Spin    Spin
	// Frames limits the number of frames drawn; zero runs forever.
	Frames int
	// Sleep pauses between frames. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// Run clears the display once and then draws frames. It returns nil when the
// frame budget is spent or ctx is done, and the first display error otherwise.
func (l *Loop) Run(ctx context.Context) error {
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	if err := l.Display.Clear(); err != nil {
		return err
	}

	frame := donut.NewFrame()
	for n := 0; l.Frames == 0 || n < l.Frames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		frame.Draw(l.Spin.A, l.Spin.B)
		if err := l.Display.Present(frame); err != nil {
			return err
		}
		l.Spin.Advance()
		sleep(FrameDelay)
	}
	return nil
}
