// Package adjnorm prepares graph adjacency matrices for spectral
// computations — the classic D^r·(A+w·I)·D^r rescaling used to condition
// graph operators before message passing, diffusion or clustering.
//
// 🚀 What is adjnorm?
//
//	A small, deterministic preprocessing library that brings together:
//		• Adjacency containers: dense (row-major), COO and CSR — one capability set
//		• Symmetric degree-power normalization with self-loop augmentation
//		• Batch calls with positional rate broadcasting
//		• Representation preservation: sparse in → sparse out, dense in → dense out
//		• gonum interop for downstream linear algebra
//
// ✨ Why choose adjnorm?
//
//   - Predictable – pure transforms, no hidden mutation of inputs
//   - Rock-solid guarantees – sentinel errors, strict validators, no panics on user data
//   - Configure once, apply many – an immutable Normalizer object for pipelines
//   - Extensible – implement matrix.Adjacency to plug in a custom storage scheme
//
// Everything is organized under two subpackages:
//
//	matrix/    — Dense, COO and CSR adjacency storage + validators and converters
//	normalize/ — the AdjacencyNormalizer: rates, self-loops, batching
//
// Quick ASCII example:
//
//	    A───B          normalize with rate=-0.5, selfloop=1:
//	     \ /           every entry (i,j) becomes
//	      C            deg(i)^-0.5 · (A+I)[i,j] · deg(j)^-0.5
//
// Start with normalize.Normalize for a single matrix, or normalize.New for a
// reusable transformer; see examples/ for end-to-end walkthroughs.
package adjnorm
