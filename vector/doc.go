// SPDX-License-Identifier: MIT

// Package vector provides an immutable fixed-dimension real vector.
//
// Every operation returns a fresh value; operands are never mutated and the
// constructor copies its input, so a Vector can be shared freely between
// goroutines and between hull builds.
//
// Operations on two vectors fail with ErrDimensionMismatch when their
// lengths differ; callers match it with errors.Is.
//
//	a := vector.New(1, 2, 3)
//	b := vector.New(4, 5, 6)
//	d, err := b.Difference(a) // <3, 3, 3>
//	dot, _ := a.Dot(b)        // 32
package vector
