// Package normalize rescales graph adjacency matrices by a symmetric
// degree-power scheme — the standard preprocessing step before spectral
// graph operations such as GNN message passing.
//
// For an n×n adjacency A, a self-loop weight w and a rate r, the transform
// computes
//
//	Â = D^r · (A + w·I) · D^r
//
// where D is the diagonal matrix of weighted degrees (row sums) of A + w·I.
// Entry-wise: Â[i,j] = deg(i)^r · (A+w·I)[i,j] · deg(j)^r. A skipped rate
// (NoRate) stops after the self-loop augmentation.
//
// The package offers three surfaces:
//
//   - Normalize    — one matrix, functional options.
//   - NormalizeAll — a batch; a single rate broadcasts across the batch, or
//     WithRates supplies one rate per matrix positionally.
//   - Normalizer   — a configure-once, apply-many transformer object for
//     pipelines (the options are resolved at New and never mutated).
//
// Representation is preserved: a dense input yields a dense result, a COO
// yields a COO, a CSR yields a CSR; sparse scaling touches stored entries
// only. Inputs are never mutated.
//
// Zero-degree nodes under a negative rate produce +Inf factors that
// propagate into the result, mirroring the usual numeric convention;
// WithStrict turns that situation into ErrZeroDegree instead.
package normalize
