package installer

import (
	"time"

	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/report"
)

// RunTier installs every entry of a tier and returns the tier's tally.
// The loop always runs to exhaustion: one bad package does not abort the
// tier, and no entry is retried. Each attempt produces exactly one Outcome,
// so the returned tally always satisfies Success+Failure == len(entries).
func RunTier(tier catalog.Tier) report.Tally {
	logger.Section("[PHASE] Installing tier %q (%d tools)\n", tier.Name, len(tier.Entries))

	var tally report.Tally
	for i, entry := range tier.Entries {
		// Space out attempts to avoid throttling by the backing repository.
		if i > 0 {
			time.Sleep(attemptDelay)
		}

		outcome := Install(entry)
		tally.Record(outcome.Succeeded)
		if outcome.Succeeded {
			logger.Success("[INFO] Installed %s\n", outcome.Subject)
		} else {
			// Report the failure by name with its captured detail now; the
			// final summary repeats the count.
			logger.Error("[ERROR] Failed to install %s: %s\n", outcome.Subject, outcome.Detail)
		}
	}

	logger.Debug("[DEBUG] Tier %q finished: %d ok, %d failed\n", tier.Name, tally.Success, tally.Failure)
	return tally
}
