package bootstrap

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCommands replaces the external-command seam with handler and records
// every invocation. The PATH refresh is stubbed out alongside, with its
// call count returned for assertions.
func stubCommands(t *testing.T, handler func(name string, arg ...string) ([]byte, error)) (calls *[][]string, refreshes *int) {
	t.Helper()

	origRun := runCommand
	origRefresh := refreshEnv

	calls = &[][]string{}
	refreshes = new(int)
	runCommand = func(name string, arg ...string) ([]byte, error) {
		*calls = append(*calls, append([]string{name}, arg...))
		return handler(name, arg...)
	}
	refreshEnv = func() error {
		*refreshes++
		return nil
	}
	t.Cleanup(func() {
		runCommand = origRun
		refreshEnv = origRefresh
	})
	return calls, refreshes
}

func TestEnsureAvailableIsIdempotent(t *testing.T) {
	// brew answers the probe both times; no install command may run.
	calls, refreshes := stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		if name == "brew" {
			return []byte("Homebrew 4.0"), nil
		}
		t.Fatalf("unexpected command %s %v", name, arg)
		return nil, nil
	})

	require.NoError(t, EnsureAvailable())
	require.NoError(t, EnsureAvailable())

	for _, call := range *calls {
		assert.Equal(t, "brew", call[0])
	}
	assert.Zero(t, *refreshes)
}

func TestEnsureAvailableUpdateFailureIsNotFatal(t *testing.T) {
	stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		if len(arg) > 0 && arg[0] == "update" {
			return []byte("index fetch failed"), errors.New("exit status 1")
		}
		return []byte("Homebrew 4.0"), nil
	})

	// The manager is present; a stale index alone must not abort the run.
	assert.NoError(t, EnsureAvailable())
}

func TestEnsureAvailableInstallFailureIsFatal(t *testing.T) {
	calls, _ := stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		if name == "brew" {
			return []byte("command not found"), errors.New("exit status 127")
		}
		// The one-shot install itself fails.
		return []byte("curl: (6) could not resolve host"), errors.New("exit status 1")
	})

	err := EnsureAvailable()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "install failed")
	// Probe then install, nothing after the failure.
	require.Len(t, *calls, 2)
	assert.Equal(t, "/bin/bash", (*calls)[1][0])
}

func TestEnsureAvailableInstallsAndRefreshesPath(t *testing.T) {
	probes := 0
	calls, refreshes := stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		if name == "brew" && arg[0] == "--version" {
			probes++
			if probes == 1 {
				// Absent before the install, present after.
				return nil, errors.New("exit status 127")
			}
			return []byte("Homebrew 4.0"), nil
		}
		return nil, nil
	})

	require.NoError(t, EnsureAvailable())

	// Probe, install, confirming probe — with exactly one PATH refresh in
	// between.
	require.Len(t, *calls, 3)
	assert.Equal(t, "/bin/bash", (*calls)[1][0])
	assert.Equal(t, 1, *refreshes)
}

func TestRequireElevationUsesSudoProbe(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, sudo probe is bypassed")
	}

	calls, _ := stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		return nil, nil
	})
	require.NoError(t, RequireElevation())
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"sudo", "-n", "true"}, (*calls)[0])
}

func TestRequireElevationFailsWithoutSudo(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, sudo probe is bypassed")
	}

	stubCommands(t, func(name string, arg ...string) ([]byte, error) {
		return []byte("a password is required"), errors.New("exit status 1")
	})
	assert.Error(t, RequireElevation())
}
