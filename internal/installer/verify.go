package installer

import (
	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/report"
)

// VerifyAll re-probes the expected executables after installation and
// tallies which are reachable. Classification is by exit status alone: zero
// is success, anything else (including the executable not being found at
// all) is a failure logged with the entry's name. The sweep installs
// nothing and its failures never change the process exit code; they only
// show up in the summary.
func VerifyAll(entries []catalog.VerificationEntry) report.Tally {
	logger.Section("[PHASE] Verifying %d executables\n", len(entries))

	var tally report.Tally
	for _, entry := range entries {
		arg := entry.ProbeArg
		if arg == "" {
			arg = catalog.DefaultProbeArg
		}

		logger.Debug("[DEBUG] Probing: %s %s\n", entry.Executable, arg)
		out, err := runCommand(entry.Executable, arg)
		tally.Record(err == nil)
		if err == nil {
			logger.Success("[INFO] %s is reachable\n", entry.Executable)
		} else {
			logger.Error("[ERROR] %s failed verification: %v\nOutput: %s\n", entry.Executable, err, out)
		}
	}

	logger.Debug("[DEBUG] Verification finished: %d ok, %d failed\n", tally.Success, tally.Failure)
	return tally
}
