// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep storage types and the normalize package minimal by delegating
//    shape/nil/length checks here.
//  - Return plain sentinel errors (wrapped only with the validator tag) so
//    call sites can wrap uniformly and match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - ValidateFinite runs a single O(len) scan in fixed order.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Errors: ErrNonSquare if rows != cols.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateScaleLen ensures the scale vector length matches the required
// order n. Used by every ScaleOuter implementation to avoid ad hoc length
// code in storage types.
// Time: O(1). Space: O(1).
func ValidateScaleLen(scale []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in scaling kernels.
	if scale == nil {
		return validatorErrorf("ValidateScaleLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	// Check the exact expected length.
	if len(scale) != n {
		return validatorErrorf("ValidateScaleLen", ErrDimensionMismatch) // scale must have one entry per node
	}

	return nil
}

// ValidateFinite ensures every entry of the vector is finite (no NaN, no
// ±Inf). Intended for strict ingestion paths; the permissive normalization
// default deliberately skips it.
// Time: O(len(x)). Space: O(1).
func ValidateFinite(x []float64) error {
	// Scan in fixed order; fail on the first violation.
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
