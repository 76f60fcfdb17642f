// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set. Algorithms return these sentinels and
// tests match them via errors.Is; public indexers never panic on bad input.

package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or
	// cols <= 0). Construction validates before allocating.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
