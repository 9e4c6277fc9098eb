// SPDX-License-Identifier: MIT
// Package hafnian: sentinel errors, limits, and functional configuration.
// This file defines ONLY the package-level error set, the documented size
// cap, and the Option plumbing shared by all four entry points. Algorithms
// MUST return these sentinels and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors in option constructors.

package hafnian

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/thomascherickal/hafnian/eigen"
)

// MaxDim is the documented hard cap on the matrix dimension n. The subset
// space has 2^(n/2) indices, enumerated in a uint64; MaxDim keeps that count
// far inside the representable range. The cap is a precondition guard, not a
// promise of feasibility — runtime is Θ(2^(n/2)·n³), so practical inputs
// stop well short of it.
const MaxDim = 64

// Operation name constants for unified error wrapping.
const (
	opHafnian     = "Hafnian"
	opLoopHafnian = "LoopHafnian"
)

// Internal panic messages (programmer-error guards in option constructors).
const (
	panicWorkersInvalid = "hafnian: WithWorkers: count must be > 0"
	panicSolverNil      = "hafnian: WithSolver: solver must be non-nil"
)

var (
	// ErrNonSquare is returned when the flattened input length is not a
	// perfect square, so no n×n interpretation exists.
	ErrNonSquare = errors.New("hafnian: matrix is not square")

	// ErrTooLarge is returned when the (possibly padded) dimension exceeds
	// MaxDim. The call performs no work and produces no partial result.
	ErrTooLarge = errors.New("hafnian: dimension exceeds MaxDim")
)

// hafErrorf wraps err with an operation tag, preserving the cause via %w so
// callers still match sentinels (including eigen.ErrNoConvergence) through
// errors.Is. Call only with err != nil.
func hafErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solver is the narrow eigenvalue capability the pipeline consumes: given an
// n×n complex matrix in flat row-major form, return its n eigenvalues. Any
// linear-algebra backend satisfying this contract can be substituted via
// WithSolver without touching the recurrence or reduction logic.
type Solver func(a []complex128, n int) ([]complex128, error)

// Options holds the resolved configuration for one call. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	workers int
	solver  Solver
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// WithWorkers sets the number of parallel workers for the subset reduction.
// The dispatcher never spawns more workers than there are subsets, so large
// values are harmless. Panics if count ≤ 0.
func WithWorkers(count int) Option {
	if count <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = count }
}

// WithSolver substitutes the eigenvalue backend. Panics on nil.
func WithSolver(s Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// defaultOptions returns the zero-configuration behavior: one worker per
// available CPU and the in-tree eigen solver.
func defaultOptions() Options {
	return Options{
		workers: runtime.GOMAXPROCS(0),
		solver:  eigen.Eigenvalues,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
