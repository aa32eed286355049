// SPDX-License-Identifier: MIT
// Package normalize: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// normalize package. All entry points MUST return these sentinels (or the
// matrix package's) and tests MUST check them via errors.Is. Shape and nil
// violations surface as matrix.ErrNonSquare / matrix.ErrNilMatrix from the
// shared validators; they are not duplicated here.

package normalize

import "errors"

var (
	// ErrNoMatrices is returned by batch entry points when zero matrices are
	// supplied. An empty batch is a caller bug, not an empty result.
	ErrNoMatrices = errors.New("normalize: no matrices supplied")

	// ErrRateCount indicates that a per-matrix rate list is incompatible with
	// the number of input matrices: valid lengths are exactly 1 (broadcast)
	// or the batch size. Mismatches fail instead of silently truncating or
	// cycling.
	ErrRateCount = errors.New("normalize: rate count must be 1 or match the matrix count")

	// ErrZeroDegree is returned ONLY under WithStrict when a node has zero
	// weighted degree and the rate is negative, which would otherwise
	// produce +Inf scaling factors. The permissive default propagates the
	// non-finite values instead of failing.
	ErrZeroDegree = errors.New("normalize: zero degree under negative rate")
)
