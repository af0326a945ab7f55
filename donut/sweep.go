// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: donut/sweep.go
// Summary: Walks the torus surface and projects every sample onto the grid.

package donut

import "math"

// Sample is one surface point after rotation and projection.
type Sample struct {
	Theta, Phi float32
	// X and Y are the projected cell, truncated toward zero. They may lie
	// outside the grid.
	X, Y int
	// OOZ is the inverse depth 1/z; larger is nearer to the eye.
	OOZ       float32
	Luminance float32
	// Shade is the clamped ramp index for Luminance.
	Shade int
}

// Visible reports whether the sample lands strictly inside the grid border.
func (s Sample) Visible() bool {
	return s.X > 0 && s.X < Width && s.Y > 0 && s.Y < Height
}

// Index is the row-major cell offset of the sample.
func (s Sample) Index() int {
	return s.X + Width*s.Y
}

func sincos(v float32) (float32, float32) {
	s, c := math.Sincos(float64(v))
	return float32(s), float32(c)
}

// Sweep visits every (theta, phi) sample of the torus rotated by a and b,
// in the order the renderer rasterizes them.
//
// Every product is wrapped in an explicit float32 conversion. That forces a
// rounding step so no architecture may fuse it into a multiply-add, and a
// frame is bit-identical on every GOARCH.
func Sweep(a, b float32, visit func(Sample)) {
	sinA, cosA := sincos(a)
	sinB, cosB := sincos(b)
	sinAsinB := float32(sinA * sinB)
	sinAcosB := float32(sinA * cosB)

	for theta := float32(0); theta < 2*math.Pi; theta += ThetaSpacing {
		sinTheta, cosTheta := sincos(theta)
		circleX := R2 + float32(R1*cosTheta)
		circleY := float32(R1 * sinTheta)
		circleYcosA := float32(circleY * cosA)

		for phi := float32(0); phi < 2*math.Pi; phi += PhiSpacing {
			sinPhi, cosPhi := sincos(phi)

			x := float32(circleX*(float32(cosB*cosPhi)+float32(sinAsinB*sinPhi))) -
				float32(circleYcosA*sinB)
			y := float32(circleX*(float32(sinB*cosPhi)-float32(sinAcosB*sinPhi))) +
				float32(circleYcosA*cosB)
			z := K2 + float32(float32(cosA*circleX)*sinPhi) + float32(circleY*sinA)
			ooz := 1 / z

			// y is negated: rows grow downward. x is doubled for the
			// roughly 2:1 aspect of terminal cells.
			xp := int(float32(Width/2) + float32(float32(2*K1*ooz)*x))
			yp := int(float32(Height/2) - float32(float32(K1*ooz)*y))

			l := float32(float32(cosPhi*cosTheta)*sinB) -
				float32(float32(cosA*cosTheta)*sinPhi) -
				float32(sinA*sinTheta) +
				float32(cosB*(float32(cosA*sinTheta)-float32(float32(cosTheta*sinA)*sinPhi)))

			visit(Sample{
				Theta:     theta,
				Phi:       phi,
				X:         xp,
				Y:         yp,
				OOZ:       ooz,
				Luminance: l,
				Shade:     LuminanceIndex(l),
			})
		}
	}
}
