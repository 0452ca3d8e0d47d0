package harness

import (
	"github.com/katalvlaran/lvpattern/codec"
	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/subgraph"
)

// Report is the outcome of Run.
type Report struct {
	RunID  string // random id labelling this run in logs
	Seed   int64
	Trials []TrialResult
}

// Failed returns the trials that did not pass.
func (r *Report) Failed() []TrialResult {
	var out []TrialResult
	for _, t := range r.Trials {
		if !t.OK() {
			out = append(out, t)
		}
	}

	return out
}

// OK reports whether every trial passed.
func (r *Report) OK() bool { return len(r.Failed()) == 0 }

// TrialResult describes one trial.
type TrialResult struct {
	Index       int
	SourceSize  int
	PatternSize int
	Planted     int
	Modes       []ModeResult

	// Fixture reproduces the trial: source after planting, pattern, planted
	// assignments. HardCheck is left false; each ModeResult names its mode.
	Fixture *codec.Document
}

// OK reports whether every mode passed.
func (t TrialResult) OK() bool {
	for _, m := range t.Modes {
		if !m.OK() {
			return false
		}
	}

	return true
}

// ModeResult holds the checks for one check mode of a trial.
type ModeResult struct {
	HardCheck bool
	Fast      int // matches found by the fast resolver
	Oracle    int // matches found by the oracle, -1 when disabled

	MissingPlanted []combinatorics.Sequence // planted but not found
	OnlyFast       []combinatorics.Sequence // found by fast only
	OnlyOracle     []combinatorics.Sequence // found by the oracle only

	Stats subgraph.Stats // fast resolver work counters
}

// OK reports whether the mode found every planted assignment and agreed with the oracle.
func (m ModeResult) OK() bool {
	return len(m.MissingPlanted) == 0 && len(m.OnlyFast) == 0 && len(m.OnlyOracle) == 0
}
