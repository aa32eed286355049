// SPDX-License-Identifier: MIT

package normalize

// Test-Bridge (White-Box) for Private Options and Broadcasting
//
// Purpose:
//   - Expose the internal options snapshot and the repeatRates broadcaster to
//     normalize_test ONLY, without widening the prod API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).

// OptionsSnapshot is a stable, read-only view of the internal Options.
type OptionsSnapshot struct {
	Rates    []Rate
	SelfLoop float64
	Strict   bool
	Parallel bool
}

// snapshotOf copies the internal state into the exported view.
func snapshotOf(o Options) OptionsSnapshot {
	rates := make([]Rate, len(o.rates))
	copy(rates, o.rates)

	return OptionsSnapshot{
		Rates:    rates,
		SelfLoop: o.selfLoop,
		Strict:   o.strict,
		Parallel: o.parallel,
	}
}

// GatherOptionsSnapshot_TestOnly resolves setters against defaults and
// returns the read-only snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// RepeatRates_TestOnly forwards to the private repeatRates broadcaster.
func RepeatRates_TestOnly(rs []Rate, k int) ([]Rate, error) {
	return repeatRates(rs, k)
}
