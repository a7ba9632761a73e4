package installer

import (
	"fmt"
	"time"

	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/report"
)

// RunPackageList installs a secondary ecosystem's packages through that
// ecosystem's own CLI. The ecosystem tool itself is probed first: when it is
// unreachable, the whole list is marked failed in one step and no install is
// attempted, rather than producing one redundant failure per package. When
// the gate passes, the list behaves like a tier: every package gets exactly
// one attempt, failures are recorded and skipped past.
func RunPackageList(list catalog.PackageList) report.Tally {
	logger.Section("[PHASE] Installing %s packages (%d via %s)\n", list.Name, len(list.Packages), list.Command)

	// Availability gate: the ecosystem CLI must answer a version probe.
	if out, err := runCommand(list.Command, "--version"); err != nil {
		logger.Warn("[WARN] %s is unreachable (%v), skipping %d packages\nOutput: %s\n",
			list.Command, err, len(list.Packages), out)
		return report.Tally{Failure: len(list.Packages)}
	}

	var tally report.Tally
	for i, pkg := range list.Packages {
		if i > 0 {
			time.Sleep(attemptDelay)
		}

		outcome := installPackage(list, pkg)
		tally.Record(outcome.Succeeded)
		if outcome.Succeeded {
			logger.Success("[INFO] Installed %s package %s\n", list.Name, outcome.Subject)
		} else {
			logger.Error("[ERROR] Failed to install %s package %s: %s\n", list.Name, outcome.Subject, outcome.Detail)
		}
	}

	logger.Debug("[DEBUG] Ecosystem %q finished: %d ok, %d failed\n", list.Name, tally.Success, tally.Failure)
	return tally
}

// installPackage runs one ecosystem install invocation, converting any
// failure of the external command into the Outcome.
func installPackage(list catalog.PackageList, pkg string) Outcome {
	args := append(append([]string{}, list.InstallArgs...), pkg)
	logger.Debug("[DEBUG] Running command: %s %v\n", list.Command, args)

	out, err := runCommand(list.Command, args...)
	if err != nil {
		return Outcome{
			Subject: pkg,
			Detail:  fmt.Sprintf("%v\nOutput: %s", err, out),
		}
	}
	return Outcome{Succeeded: true, Subject: pkg}
}
