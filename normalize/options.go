// SPDX-License-Identifier: MIT

// Package normalize: functional configuration for the adjacency normalizer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (pure setters — values are stored verbatim and
//     validated at apply time, never in the constructor),
//   - gatherOptions / layerOptions helpers (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Rate/self-loop values are intentionally NOT validated here: a NaN rate
//     propagates numerically exactly like any other exponent, matching the
//     permissive numeric policy. Structural problems (rate-count mismatch,
//     non-square input) are apply-time errors, not construction-time panics.

package normalize

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRate is the degree exponent used when no rate option is given:
	// −1/2 yields the symmetric normalization D^-1/2·(A+wI)·D^-1/2.
	DefaultRate = -0.5

	// DefaultSelfLoop is the weight added to every diagonal entry before
	// degree computation. Applied uniformly to every matrix in a batch.
	DefaultSelfLoop = 1.0

	// DefaultStrict controls zero-degree handling under a negative rate.
	// false ⇒ permissive: +Inf factors propagate into the result.
	DefaultStrict = false

	// DefaultParallel controls batch execution.
	// false ⇒ sequential, one matrix after another in positional order.
	DefaultParallel = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// last-writer-wins across repeated setters of the same field.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	rates    []Rate  // length 1 (broadcast) or one per batch element
	selfLoop float64 // diagonal weight added before degree computation
	strict   bool    // fail on zero degree under negative rate
	parallel bool    // batch fan-out, one worker per matrix
}

// ---------- Constructors (WithX) ----------

// WithRate sets a single numeric degree exponent, broadcast across a batch.
//
// Behavior highlights:
//   - Replaces any previously set rate list.
//   - Stored verbatim; non-finite exponents propagate numerically.
//
// Complexity: O(1).
func WithRate(v float64) Option {
	return func(o *Options) { o.rates = []Rate{NewRate(v)} }
}

// WithNoRate disables degree scaling: the transform returns the
// self-loop-augmented matrix unchanged. Broadcast across a batch.
//
// Complexity: O(1).
func WithNoRate() Option {
	return func(o *Options) { o.rates = []Rate{NoRate()} }
}

// WithRates sets one rate per batch element, in positional correspondence.
// A list of length 1 broadcasts like WithRate; any other length must equal
// the batch size or the apply call fails with ErrRateCount.
//
// Behavior highlights:
//   - The list is copied; the caller keeps ownership of rs.
//   - An empty call (no arguments) is preserved verbatim and fails at apply
//     time with ErrRateCount — no silent fallback to the default.
//
// Complexity: O(len(rs)).
func WithRates(rs ...Rate) Option {
	return func(o *Options) {
		cp := make([]Rate, len(rs))
		copy(cp, rs)
		o.rates = cp
	}
}

// WithSelfLoop sets the weight added to every diagonal entry before
// normalization. Applied uniformly to every matrix in a batch call; a weight
// of 0 still produces a fresh copy of each input.
//
// Complexity: O(1).
func WithSelfLoop(w float64) Option {
	return func(o *Options) { o.selfLoop = w }
}

// WithStrict makes zero weighted degree under a negative rate an error
// (ErrZeroDegree) instead of letting +Inf factors propagate. Checked after
// self-loop augmentation, before any scaling work.
//
// Complexity: O(1) to set; adds an O(n) degree scan per matrix at apply time.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithPermissive restores the default zero-degree policy: non-finite
// degree-power values propagate into the result.
//
// Complexity: O(1).
func WithPermissive() Option {
	return func(o *Options) { o.strict = false }
}

// WithParallel normalizes batch elements concurrently, one goroutine per
// matrix. Matrices are independent and share no mutable state, so the only
// synchronization is collecting results into positional order. Single-matrix
// calls ignore the flag.
//
// Complexity: O(1).
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential restores the default one-after-another batch execution.
//
// Complexity: O(1).
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented defaults (single source of truth).
// Keep this in sync with the Default* constants above.
func defaultOptions() Options {
	return Options{
		rates:    []Rate{NewRate(DefaultRate)},
		selfLoop: DefaultSelfLoop,
		strict:   DefaultStrict,
		parallel: DefaultParallel,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for package-level functions and New.
// Stage 1: start from defaultOptions().
// Stage 2: apply setters in order (last-writer-wins).
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// layerOptions applies per-call setters on top of an already-resolved base
// (the Normalizer's stored configuration). The base is copied; rate slices
// installed by setters are fresh, so the base's slice is never aliased for
// writing.
// Complexity: O(k) for k setters.
func layerOptions(base Options, user []Option) Options {
	o := base // value copy; setters replace slices wholesale
	for _, set := range user {
		set(&o)
	}

	return o
}
