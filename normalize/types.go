// SPDX-License-Identifier: MIT

// Package normalize: domain types. Rate is the nullable degree exponent;
// Normalizer is the configure-once transformer facade. Options and their
// setters live in options.go, sentinels in errors.go per the global
// conventions.
package normalize

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/adjnorm/matrix"
)

// Rate is the degree exponent applied during normalization.
//
// A Rate is either a numeric exponent (Skip == false) or the explicit
// "no degree scaling" marker (Skip == true): the latter makes the transform
// return the self-loop-augmented matrix unchanged. The zero value is the
// numeric rate 0.0, not a skip.
type Rate struct {
	Value float64 // degree exponent; ignored when Skip is true
	Skip  bool    // true ⇒ stop after self-loop augmentation
}

// NewRate returns a numeric rate with the given exponent.
func NewRate(v float64) Rate { return Rate{Value: v} }

// NoRate returns the marker rate that disables degree scaling.
func NoRate() Rate { return Rate{Skip: true} }

// String renders the rate as its exponent, or "none" for a skip.
func (r Rate) String() string {
	if r.Skip {
		return "none"
	}

	return fmt.Sprintf("%g", r.Value)
}

// Normalizer is a reusable adjacency normalizer: options are resolved once
// at New and never mutated afterwards, so a single Normalizer is safe to
// share across goroutines. Per-call options layer on top of the stored
// configuration without changing it.
type Normalizer struct {
	opts Options // resolved configuration snapshot
}

// New constructs a Normalizer with the given options resolved against the
// documented defaults (rate −0.5, self-loop 1.0, sequential, permissive).
// Values are stored verbatim; nothing is validated until Apply runs.
// Complexity: O(k) for k options.
func New(opts ...Option) *Normalizer {
	return &Normalizer{opts: gatherOptions(opts...)}
}

// Apply normalizes a single matrix under the stored configuration, with
// optional per-call overrides layered on top.
// Complexity: O(n²) dense, O(nnz + n) sparse.
func (n *Normalizer) Apply(a matrix.Adjacency, opts ...Option) (matrix.Adjacency, error) {
	return normalizeSingle(a, layerOptions(n.opts, opts))
}

// ApplyAll normalizes a batch under the stored configuration, with optional
// per-call overrides layered on top. Results are positional; the call either
// fully succeeds or fails with no partial output.
func (n *Normalizer) ApplyAll(as []matrix.Adjacency, opts ...Option) ([]matrix.Adjacency, error) {
	return normalizeBatch(as, layerOptions(n.opts, opts))
}

// String renders a human-readable description of the configuration, e.g.
// "Normalizer(rate=-0.5, selfloop=1)" or
// "Normalizer(rate=[none -0.5], selfloop=0.5, strict)".
func (n *Normalizer) String() string {
	var b strings.Builder
	b.WriteString("Normalizer(rate=")
	if len(n.opts.rates) == 1 {
		b.WriteString(n.opts.rates[0].String())
	} else {
		parts := make([]string, len(n.opts.rates))
		for i, r := range n.opts.rates {
			parts[i] = r.String()
		}
		fmt.Fprintf(&b, "[%s]", strings.Join(parts, " "))
	}
	fmt.Fprintf(&b, ", selfloop=%g", n.opts.selfLoop)
	if n.opts.strict {
		b.WriteString(", strict")
	}
	if n.opts.parallel {
		b.WriteString(", parallel")
	}
	b.WriteString(")")

	return b.String()
}
