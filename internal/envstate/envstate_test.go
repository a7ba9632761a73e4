package envstate

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubShell(t *testing.T, handler func(name string, arg ...string) ([]byte, error)) {
	t.Helper()
	orig := runCommand
	runCommand = handler
	t.Cleanup(func() { runCommand = orig })
}

func TestRefreshPathAppliesShellPath(t *testing.T) {
	// t.Setenv restores the original PATH when the test finishes.
	t.Setenv("PATH", os.Getenv("PATH"))

	stubShell(t, func(name string, arg ...string) ([]byte, error) {
		return []byte("/opt/homebrew/bin:/usr/bin\n"), nil
	})

	require.NoError(t, RefreshPath())
	assert.Equal(t, "/opt/homebrew/bin:/usr/bin", os.Getenv("PATH"))
}

func TestRefreshPathRejectsEmptyResult(t *testing.T) {
	t.Setenv("PATH", os.Getenv("PATH"))
	before := os.Getenv("PATH")

	stubShell(t, func(name string, arg ...string) ([]byte, error) {
		return []byte("  \n"), nil
	})

	assert.Error(t, RefreshPath())
	assert.Equal(t, before, os.Getenv("PATH"))
}

func TestRefreshPathPropagatesShellFailure(t *testing.T) {
	stubShell(t, func(name string, arg ...string) ([]byte, error) {
		return []byte("profile error"), errors.New("exit status 1")
	})

	err := RefreshPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile error")
}
