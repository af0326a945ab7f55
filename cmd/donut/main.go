// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/donut/main.go
// Summary: Spins an ASCII torus in the terminal until the process is killed.
// Usage: Run `donut` with no arguments.

package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/framegrace/texeldonut/internal/animation"
	"github.com/framegrace/texeldonut/internal/ansi"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("donut: ")

	if _, _, err := ansi.CheckSize(os.Stdout); err != nil && !errors.Is(err, ansi.ErrNotTerminal) {
		log.Printf("Display: %v", err)
	}

	loop := &animation.Loop{Display: ansi.NewDisplay(os.Stdout)}
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("render loop: %v", err)
	}
}
