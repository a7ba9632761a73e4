// Package report holds the accounting side of a run: per-phase tallies,
// their aggregation into an overall result, and the rendered/persisted
// summary. Aggregation is pure arithmetic with no I/O; the overall report
// is always recomputed from the phase tallies, never mutated on its own.
package report

import (
	"encoding/json"
	"os"

	"bootstrap-machine/internal/logger"
)

// Tally is the success/failure count pair produced by one phase.
// Every attempt in a phase increments exactly one of the two counters, so
// Success+Failure always equals the number of attempts made.
type Tally struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Record counts one attempt into the tally.
func (t *Tally) Record(succeeded bool) {
	if succeeded {
		t.Success++
	} else {
		t.Failure++
	}
}

// Phase pairs a tally with the name of the phase that produced it.
type Phase struct {
	Name  string `json:"name"`
	Tally Tally  `json:"tally"`
}

// Overall collects every install phase's tally plus the optional
// verification tally (nil when the sweep was skipped).
type Overall struct {
	Phases       []Phase `json:"phases"`
	Verification *Phase  `json:"verification,omitempty"`
}

// Aggregate sums a sequence of tallies into one. The empty sequence yields
// the zero tally.
func Aggregate(tallies ...Tally) Tally {
	var total Tally
	for _, t := range tallies {
		total.Success += t.Success
		total.Failure += t.Failure
	}
	return total
}

// Total aggregates the install phases of the report. The verification tally
// is kept out of the total: it observes, it doesn't install.
func (o Overall) Total() Tally {
	tallies := make([]Tally, 0, len(o.Phases))
	for _, p := range o.Phases {
		tallies = append(tallies, p.Tally)
	}
	return Aggregate(tallies...)
}

// FullySuccessful reports whether every phase, verification included,
// finished without a single failure.
func (o Overall) FullySuccessful() bool {
	if o.Total().Failure != 0 {
		return false
	}
	return o.Verification == nil || o.Verification.Tally.Failure == 0
}

// Render prints the final summary: one line per phase, the verification
// line when the sweep ran, and a closing success or warning banner.
// Install failures are reported data, not errors — a run with failures
// still renders and still exits zero.
func Render(o Overall) {
	logger.Header("\n=== Setup summary ===\n")

	for _, p := range o.Phases {
		logger.Section("[PHASE] %-24s %d installed, %d failed\n", p.Name, p.Tally.Success, p.Tally.Failure)
	}
	if o.Verification != nil {
		logger.Section("[PHASE] %-24s %d reachable, %d unreachable\n",
			o.Verification.Name, o.Verification.Tally.Success, o.Verification.Tally.Failure)
	}

	total := o.Total()
	if o.FullySuccessful() {
		logger.Success("[INFO] All %d installs completed successfully\n", total.Success)
	} else {
		logger.Warn("[WARN] Completed with failures: %d installed, %d failed\n", total.Success, total.Failure)
		if o.Verification != nil && o.Verification.Tally.Failure > 0 {
			logger.Warn("[WARN] %d executables failed verification\n", o.Verification.Tally.Failure)
		}
	}
}

// WriteFile persists the report as indented JSON at the given path.
// Errors during marshalling or writing are logged but not propagated.
func WriteFile(path string, o Overall) {
	file, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal report: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing report to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write report file %s: %v\n", path, err)
	}
}
