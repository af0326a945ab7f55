// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: donut/torus.go
// Summary: Torus geometry, projection constants and the luminance ramp.
// Usage: Shared by the renderer, the ANSI display and the tcell donut app.

// Package donut rasterizes a rotating torus into a fixed character grid.
package donut

const (
	// R1 is the radius of the tube cross-section.
	R1 float32 = 1
	// R2 is the distance from the torus center to the tube center.
	R2 float32 = 2
	// K1 is the eye-to-screen distance; it scales the projection.
	K1 float32 = 20
	// K2 pushes the object away from the eye along z.
	K2 float32 = 5

	// ThetaSpacing steps around the tube cross-section.
	ThetaSpacing float32 = 0.07
	// PhiSpacing steps the cross-section around the central axis.
	PhiSpacing float32 = 0.02
)

// Grid dimensions in terminal cells.
const (
	Width  = 80
	Height = 30
)

// Ramp lists the shading glyphs from dimmest to brightest.
const Ramp = ".,-~:;=!*#$@"

// Blank fills cells that no surface point reached.
const Blank byte = ' '

// LuminanceIndex maps a surface luminance onto the ramp. Surfaces facing
// away from the light (l <= 0) get the dimmest glyph instead of being dropped.
func LuminanceIndex(l float32) int {
	idx := int(float32(l * 8))
	switch {
	case idx < 0:
		return 0
	case idx >= len(Ramp):
		return len(Ramp) - 1
	}
	return idx
}

// Glyph returns the ramp character for a luminance value.
func Glyph(l float32) byte {
	return Ramp[LuminanceIndex(l)]
}
