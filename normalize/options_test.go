// SPDX-License-Identifier: MIT
package normalize_test

import (
	"testing"

	"github.com/katalvlaran/adjnorm/normalize"
)

// TestDefaultOptions_Documented verifies that the zero-option resolution
// equals the documented Default* constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := normalize.GatherOptionsSnapshot_TestOnly()

	if len(o.Rates) != 1 {
		t.Fatalf("default rate list length mismatch: got %d, want 1", len(o.Rates))
	}
	if o.Rates[0].Skip {
		t.Fatal("default rate must be numeric, not a skip")
	}
	if o.Rates[0].Value != normalize.DefaultRate {
		t.Fatalf("rate default mismatch: got %v, want %v", o.Rates[0].Value, normalize.DefaultRate)
	}
	if o.SelfLoop != normalize.DefaultSelfLoop {
		t.Fatalf("selfloop default mismatch: got %v, want %v", o.SelfLoop, normalize.DefaultSelfLoop)
	}
	if o.Strict != normalize.DefaultStrict {
		t.Fatalf("strict default mismatch: got %v, want %v", o.Strict, normalize.DefaultStrict)
	}
	if o.Parallel != normalize.DefaultParallel {
		t.Fatalf("parallel default mismatch: got %v, want %v", o.Parallel, normalize.DefaultParallel)
	}
}

// TestOptions_LastWriterWins ensures each setter toggles exactly its field
// and repeated setters resolve in application order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := normalize.GatherOptionsSnapshot_TestOnly(
		normalize.WithStrict(), normalize.WithPermissive(), // last wins
		normalize.WithParallel(), normalize.WithSequential(), // last wins
		normalize.WithRate(1.5), normalize.WithNoRate(), // last wins
		normalize.WithSelfLoop(0.25),
	)

	if o.Strict {
		t.Fatal("last-writer-wins failed: strict=true, want false")
	}
	if o.Parallel {
		t.Fatal("last-writer-wins failed: parallel=true, want false")
	}
	if len(o.Rates) != 1 || !o.Rates[0].Skip {
		t.Fatalf("last-writer-wins failed: rates=%v, want single skip", o.Rates)
	}
	if o.SelfLoop != 0.25 {
		t.Fatalf("selfloop not applied: got %v, want 0.25", o.SelfLoop)
	}
}

// TestWithRates_CopiesCallerSlice ensures the option owns its rate list.
func TestWithRates_CopiesCallerSlice(t *testing.T) {
	rs := []normalize.Rate{normalize.NewRate(-0.5), normalize.NoRate()}
	o := normalize.GatherOptionsSnapshot_TestOnly(normalize.WithRates(rs...))

	rs[0] = normalize.NewRate(99) // mutate the caller's slice afterwards

	if o.Rates[0].Value != -0.5 {
		t.Fatalf("WithRates aliased the caller slice: got %v", o.Rates[0])
	}
	if !o.Rates[1].Skip {
		t.Fatal("second rate must be the skip marker")
	}
}

// TestRate_String covers both renderings of the nullable rate.
func TestRate_String(t *testing.T) {
	if got := normalize.NewRate(-0.5).String(); got != "-0.5" {
		t.Fatalf("numeric rate rendering: got %q, want %q", got, "-0.5")
	}
	if got := normalize.NoRate().String(); got != "none" {
		t.Fatalf("skip rate rendering: got %q, want %q", got, "none")
	}
}

// TestNormalizer_String verifies the human-readable configuration dump.
func TestNormalizer_String(t *testing.T) {
	if got := normalize.New().String(); got != "Normalizer(rate=-0.5, selfloop=1)" {
		t.Fatalf("default rendering mismatch: got %q", got)
	}

	n := normalize.New(
		normalize.WithRates(normalize.NoRate(), normalize.NewRate(1)),
		normalize.WithSelfLoop(0.5),
		normalize.WithStrict(),
	)
	want := "Normalizer(rate=[none 1], selfloop=0.5, strict)"
	if got := n.String(); got != want {
		t.Fatalf("rendering mismatch: got %q, want %q", got, want)
	}
}
