package installer

import (
	"fmt"
	"os/exec"
	"time"

	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/logger"
)

// Outcome is the uniform result of one install attempt. Install never lets
// an external-process failure escape as an error; every attempt, good or
// bad, materializes as one of these.
type Outcome struct {
	Succeeded bool   // whether the install command exited cleanly
	Subject   string // the entry or package the attempt was for
	Detail    string // captured error text when Succeeded is false
}

// Pacing between external invocations. The backing repositories throttle
// rapid-fire clients, so attempts within a phase are spaced out and phases
// are separated by a longer pause. Package variables so tests can zero them.
var (
	attemptDelay = 500 * time.Millisecond
	phaseDelay   = 3 * time.Second
)

// runCommand executes an external command and returns its combined output.
// Package variable so tests can substitute a fake package manager.
var runCommand = func(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).CombinedOutput()
}

// Install installs a single catalog entry and reports the result as data.
// The entry's source selects the mechanism: the package manager (default)
// or a direct GitHub-release download. Failures of the external command are
// captured into the Outcome; this function does not return an error.
func Install(entry catalog.Entry) Outcome {
	logger.Debug("[DEBUG] Install: %s (version=%s, source=%s)\n", entry.Name, entry.Version, entry.Source)

	switch entry.Source {
	case "", catalog.SourceBrew:
		return installWithBrew(entry)
	case catalog.SourceGitHub:
		return installFromGitHub(entry)
	default:
		// Unknown sources are rejected at catalog load; reaching this means
		// the entry bypassed validation. Still convert to data.
		return Outcome{Subject: entry.Name, Detail: fmt.Sprintf("unknown install source %q", entry.Source)}
	}
}

// installWithBrew builds and runs the package-manager install invocation.
// A pinned version becomes a versioned formula name (brew's `name@version`
// convention); the "latest" sentinel omits the constraint entirely.
func installWithBrew(entry catalog.Entry) Outcome {
	target := entry.Name
	if entry.Pinned() {
		target = entry.Name + "@" + entry.Version
	}

	// --quiet suppresses progress noise; brew is non-interactive by default.
	logger.Debug("[DEBUG] Running command: brew install --quiet %s\n", target)
	out, err := runCommand("brew", "install", "--quiet", target)
	if err != nil {
		return Outcome{
			Subject: entry.Name,
			Detail:  fmt.Sprintf("%v\nOutput: %s", err, out),
		}
	}
	return Outcome{Succeeded: true, Subject: entry.Name}
}
