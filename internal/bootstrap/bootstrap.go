// Package bootstrap holds the two fatal preconditions of a run: the
// privilege check and the ensure-present-and-current step for the system
// package manager. Everything after these two is tolerant of failure;
// these two abort the run with a non-zero exit when they fail.
package bootstrap

import (
	"fmt"
	"os"
	"os/exec"

	"bootstrap-machine/internal/envstate"
	"bootstrap-machine/internal/logger"
)

// installScriptURL is the official Homebrew bootstrap script, fetched over
// HTTPS by the one-shot install command.
const installScriptURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// runCommand executes an external command and returns its combined output.
// Package variable so tests can substitute a fake.
var runCommand = func(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).CombinedOutput()
}

// refreshEnv re-reads the process PATH after the package manager lands on
// disk. Indirected for tests.
var refreshEnv = envstate.RefreshPath

// RequireElevation checks once, before any phase runs, that the process can
// act with administrator-equivalent privilege: either it is root, or sudo
// grants access without prompting. A failure here is fatal to the run.
func RequireElevation() error {
	if os.Geteuid() == 0 {
		logger.Debug("[DEBUG] Running as root\n")
		return nil
	}

	// `sudo -n true` exits non-zero when sudo would need to prompt.
	if out, err := runCommand("sudo", "-n", "true"); err != nil {
		return fmt.Errorf("administrator privileges required: sudo probe failed: %v\nOutput: %s", err, out)
	}
	logger.Debug("[DEBUG] Passwordless sudo available\n")
	return nil
}

// EnsureAvailable makes sure the system package manager is present and its
// package index is current. When brew already answers a version probe, the
// index is refreshed and nothing is installed, so calling this twice in a
// row installs nothing the second time. When brew is absent, the official
// install script is run once; if that fails, the returned error is fatal to
// the whole run. On a successful install the process PATH is refreshed
// before returning, so later phases can resolve the new binary.
func EnsureAvailable() error {
	if out, err := runCommand("brew", "--version"); err == nil {
		logger.Debug("[DEBUG] Package manager present: %s\n", out)

		// Keep the package index current. A failed update is logged but not
		// fatal: the manager itself is usable, installs may still succeed.
		if out, err := runCommand("brew", "update", "--quiet"); err != nil {
			logger.Warn("[WARN] brew update failed: %v\nOutput: %s\n", err, out)
		}
		return nil
	}

	logger.Section("[PHASE] Package manager not found. Installing Homebrew...\n")

	// One-shot non-interactive install using the official script.
	installCmd := fmt.Sprintf(`NONINTERACTIVE=1 /bin/bash -c "$(curl -fsSL %s)"`, installScriptURL)
	logger.Debug("[DEBUG] Running command: /bin/bash -c %s\n", installCmd)
	if out, err := runCommand("/bin/bash", "-c", installCmd); err != nil {
		return fmt.Errorf("package manager install failed: %v\nOutput: %s", err, out)
	}

	// The new binary lives in a directory this process has never seen;
	// re-read PATH before probing again.
	if err := refreshEnv(); err != nil {
		logger.Warn("[WARN] Failed to refresh PATH after install: %v\n", err)
	}

	if out, err := runCommand("brew", "--version"); err != nil {
		return fmt.Errorf("package manager still unreachable after install: %v\nOutput: %s", err, out)
	}

	logger.Success("[INFO] Package manager installed successfully\n")
	return nil
}
