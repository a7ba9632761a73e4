// Package envstate gives the process an explicit way to re-read PATH-like
// environment state. Binaries installed mid-run (most importantly the
// package manager itself) live in directories the current process only
// learns about by asking a fresh login shell, so later phases call
// RefreshPath at well-defined points instead of relying on ambient state.
package envstate

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"bootstrap-machine/internal/logger"
)

// runCommand executes an external command and returns its combined output.
// It's a package variable so tests can substitute a fake shell.
var runCommand = func(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).CombinedOutput()
}

// RefreshPath asks the user's login shell for its PATH and applies it to the
// current process. Called after the package manager is installed so that the
// following phases can resolve newly placed binaries.
func RefreshPath() error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		// No SHELL in the environment (e.g., launched from a service); bash
		// is the safest interactive-shell stand-in.
		shell = "/bin/bash"
	}
	logger.Debug("[DEBUG] Refreshing PATH via login shell %s\n", shell)

	// -l makes the shell source its profile, which is where package-manager
	// installers append their bin directories.
	out, err := runCommand(shell, "-lc", `printf '%s' "$PATH"`)
	if err != nil {
		return fmt.Errorf("failed to read PATH from login shell %s: %v\nOutput: %s", shell, err, out)
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return fmt.Errorf("login shell %s returned an empty PATH", shell)
	}

	logger.Debug("[DEBUG] Refreshed PATH: %s\n", path)
	return os.Setenv("PATH", path)
}
