package installer

import (
	"time"

	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/report"
)

// Options are the coarse-grained toggles for a pipeline run. They suppress
// whole phases before they start; there is no mid-phase cancellation.
type Options struct {
	SkipVerify bool
}

// Run executes the install pipeline against a catalog: tiers in declared
// order, then the secondary-ecosystem package lists, then the verification
// sweep unless it is toggled off. The package manager is assumed available
// (the bootstrap step runs before this). Every phase is tolerant: its
// failures land in the tally and the pipeline moves on, with a pause
// between phases to stay clear of repository rate limits.
func Run(cat catalog.Catalog, opts Options) report.Overall {
	var overall report.Overall

	for i, tier := range cat.Tiers {
		if i > 0 {
			time.Sleep(phaseDelay)
		}
		overall.Phases = append(overall.Phases, report.Phase{
			Name:  "tier:" + tier.Name,
			Tally: RunTier(tier),
		})
	}

	for _, eco := range cat.Ecosystems {
		time.Sleep(phaseDelay)
		overall.Phases = append(overall.Phases, report.Phase{
			Name:  "ecosystem:" + eco.Name,
			Tally: RunPackageList(eco),
		})
	}

	if !opts.SkipVerify {
		time.Sleep(phaseDelay)
		verification := report.Phase{Name: "verify", Tally: VerifyAll(cat.Verify)}
		overall.Verification = &verification
	}

	return overall
}
