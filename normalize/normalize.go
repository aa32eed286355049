// SPDX-License-Identifier: MIT

// Package normalize: the degree-power normalization kernel and its public
// facades. The kernel is pure — it never mutates its input and allocates one
// fresh matrix of the same representation family per call.
package normalize

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/adjnorm/matrix"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNormalize    = "Normalize"
	opNormalizeAll = "NormalizeAll"
)

// normErrorf wraps err with an operation tag, preserving the underlying
// sentinel via %w so callers can still match with errors.Is.
// Use only when err != nil.
func normErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Normalize rescales a single adjacency matrix:
//
//	Â = D^rate · (a + selfloop·I) · D^rate
//
// under the given options (defaults: rate −0.5, self-loop 1.0). The result
// has the same concrete representation as the input; the input is never
// mutated.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare — malformed input.
//   - ErrRateCount — WithRates supplied more than one rate for one matrix.
//   - ErrZeroDegree — strict mode only (see WithStrict).
//
// Complexity: O(n²) dense, O(nnz + n) sparse.
func Normalize(a matrix.Adjacency, opts ...Option) (matrix.Adjacency, error) {
	return normalizeSingle(a, gatherOptions(opts...))
}

// NormalizeAll rescales a batch of adjacency matrices, returning results in
// positional correspondence with the inputs. Orders may differ across the
// batch. A single configured rate broadcasts to every matrix; WithRates
// supplies per-matrix rates. The self-loop weight applies uniformly.
//
// The call is all-or-nothing: on any error no results are returned.
//
// Errors: everything Normalize returns, plus ErrNoMatrices for an empty
// batch and ErrRateCount for a rate list that matches neither 1 nor the
// batch size.
//
// Complexity: sum of per-matrix costs; with WithParallel the wall time is
// the maximum per-matrix cost.
func NormalizeAll(as []matrix.Adjacency, opts ...Option) ([]matrix.Adjacency, error) {
	return normalizeBatch(as, gatherOptions(opts...))
}

// normalizeSingle resolves the rate for a one-element batch and runs the
// kernel. Shared by Normalize and Normalizer.Apply.
func normalizeSingle(a matrix.Adjacency, o Options) (matrix.Adjacency, error) {
	// A single matrix accepts exactly one (possibly broadcast) rate
	rates, err := repeatRates(o.rates, 1)
	if err != nil {
		return nil, normErrorf(opNormalize, err)
	}

	out, err := normalizeOne(a, rates[0], o)
	if err != nil {
		return nil, normErrorf(opNormalize, err)
	}

	return out, nil
}

// normalizeBatch broadcasts rates across the batch and dispatches to the
// sequential or parallel runner. Shared by NormalizeAll and
// Normalizer.ApplyAll.
func normalizeBatch(as []matrix.Adjacency, o Options) ([]matrix.Adjacency, error) {
	k := len(as)
	if k == 0 {
		return nil, normErrorf(opNormalizeAll, ErrNoMatrices)
	}

	// Resolve one rate per matrix (broadcast or positional)
	rates, err := repeatRates(o.rates, k)
	if err != nil {
		return nil, normErrorf(opNormalizeAll, err)
	}

	if o.parallel && k > 1 {
		return normalizeParallel(as, rates, o)
	}

	// Sequential path: fixed positional order, fail on first error
	out := make([]matrix.Adjacency, k)
	for i := range as {
		if out[i], err = normalizeOne(as[i], rates[i], o); err != nil {
			return nil, normErrorf(opNormalizeAll, err) // discard partial results
		}
	}

	return out, nil
}

// normalizeParallel fans the batch out one goroutine per matrix. Matrices
// are independent and the kernel is pure, so workers share nothing; each
// writes its own slot of the pre-sized result and error slices. The lowest
// failing index wins, keeping the reported error deterministic regardless
// of scheduling.
func normalizeParallel(as []matrix.Adjacency, rates []Rate, o Options) ([]matrix.Adjacency, error) {
	out := make([]matrix.Adjacency, len(as))
	errs := make([]error, len(as))

	var wg sync.WaitGroup
	for i := range as {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i], errs[i] = normalizeOne(as[i], rates[i], o)
		}(i)
	}
	wg.Wait()

	// Deterministic error selection: first failing position
	for _, err := range errs {
		if err != nil {
			return nil, normErrorf(opNormalizeAll, err) // discard all results
		}
	}

	return out, nil
}

// normalizeOne is the per-matrix kernel.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Augment): fresh copy a + selfloop·I, same representation family.
// Stage 3 (Skip): a NoRate stops here — augmentation is the whole transform.
// Stage 4 (Degree): weighted degrees as row sums of the augmented matrix;
// strict mode rejects zero degrees under a negative rate before any scaling.
// Stage 5 (Scale): pow[i] = deg[i]^rate, then entry (i,j) *= pow[i]·pow[j]
// (stored entries only for sparse families).
// Complexity: O(n²) dense, O(nnz + n) sparse.
func normalizeOne(a matrix.Adjacency, r Rate, o Options) (matrix.Adjacency, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, err
	}

	// Self-loop augmentation always copies; the input stays untouched
	aug, err := a.AddDiagonal(o.selfLoop)
	if err != nil {
		return nil, err
	}
	if r.Skip {
		return aug, nil
	}

	deg := aug.RowSums()
	if o.strict && r.Value < 0 {
		// Fail fast before any scaling work
		for i, d := range deg {
			if d == 0 {
				return nil, fmt.Errorf("node %d: %w", i, ErrZeroDegree)
			}
		}
	}

	// Elementwise degree power; 0^negative yields +Inf and propagates
	pow := make([]float64, len(deg))
	for i, d := range deg {
		pow[i] = math.Pow(d, r.Value)
	}

	if err = aug.ScaleOuter(pow); err != nil {
		return nil, err
	}

	return aug, nil
}
