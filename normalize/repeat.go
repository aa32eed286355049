// SPDX-License-Identifier: MIT

// Package normalize: rate broadcasting. A scalar-or-list configuration is
// resolved here into exactly one rate per batch element, or fails — length
// mismatches are never truncated or cycled.
package normalize

import "fmt"

// repeatRates broadcasts a rate list to length k.
// Stage 1 (Fast path): a list of exactly k rates is copied verbatim.
// Stage 2 (Broadcast): a single rate is replicated k times.
// Stage 3 (Fail): any other length is an ErrRateCount violation.
//
// Inputs:
//   - rs: configured rates (length ≥ 0).
//   - k:  batch size (callers guarantee k ≥ 1).
//
// Returns a fresh slice; rs is never aliased.
// Complexity: O(k) time and memory.
func repeatRates(rs []Rate, k int) ([]Rate, error) {
	switch {
	case len(rs) == k:
		// Positional correspondence; copy so later option layering cannot alias
		out := make([]Rate, k)
		copy(out, rs)
		return out, nil

	case len(rs) == 1:
		// Scalar broadcast: replicate the single rate
		out := make([]Rate, k)
		for i := range out {
			out[i] = rs[0]
		}
		return out, nil

	default:
		return nil, fmt.Errorf("repeatRates: %d rates for %d matrices: %w", len(rs), k, ErrRateCount)
	}
}
