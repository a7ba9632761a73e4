package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()

	require.NoError(t, Validate(cat))
	require.Len(t, cat.Tiers, 2)
	assert.Equal(t, "primary", cat.Tiers[0].Name)
	assert.Equal(t, "secondary", cat.Tiers[1].Name)
	assert.NotEmpty(t, cat.Ecosystems)
	assert.NotEmpty(t, cat.Verify)
}

func TestPinnedDistinguishesLatestSentinel(t *testing.T) {
	assert.False(t, Entry{Name: "git", Version: LatestVersion}.Pinned())
	assert.False(t, Entry{Name: "git"}.Pinned())
	assert.True(t, Entry{Name: "git", Version: "2.44.0"}.Pinned())
}

func TestLoadCatalogFile(t *testing.T) {
	content := `catalog:
  tiers:
    - name: primary
      tools:
        - name: git
          version: latest
        - name: jq
          version: 1.7.1
  ecosystems:
    - name: python
      command: pip3
      install_args: ["install", "--upgrade"]
      packages: [virtualenv, requests]
  verify:
    - exe: git
    - exe: jq
      arg: -V
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cat.Tiers, 1)
	assert.Equal(t, "primary", cat.Tiers[0].Name)
	require.Len(t, cat.Tiers[0].Entries, 2)
	assert.Equal(t, "jq", cat.Tiers[0].Entries[1].Name)
	assert.Equal(t, "1.7.1", cat.Tiers[0].Entries[1].Version)

	require.Len(t, cat.Ecosystems, 1)
	assert.Equal(t, []string{"install", "--upgrade"}, cat.Ecosystems[0].InstallArgs)
	assert.Equal(t, []string{"virtualenv", "requests"}, cat.Ecosystems[0].Packages)

	// The omitted probe argument gets the default; an explicit one is kept.
	require.Len(t, cat.Verify, 2)
	assert.Equal(t, DefaultProbeArg, cat.Verify[0].ProbeArg)
	assert.Equal(t, "-V", cat.Verify[1].ProbeArg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadVersion(t *testing.T) {
	cat := Catalog{Tiers: []Tier{{
		Name:    "primary",
		Entries: []Entry{{Name: "git", Version: "not-a-version"}},
	}}}

	err := Validate(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-version")
}

func TestValidateAcceptsVPrefixedVersion(t *testing.T) {
	cat := Catalog{Tiers: []Tier{{
		Name:    "primary",
		Entries: []Entry{{Name: "node", Version: "v20.11.1"}},
	}}}
	assert.NoError(t, Validate(cat))
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	cat := Catalog{Tiers: []Tier{{
		Name:    "primary",
		Entries: []Entry{{Name: "git", Source: "apt"}},
	}}}

	err := Validate(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apt")
}

func TestValidateRejectsEcosystemWithoutCommand(t *testing.T) {
	cat := Catalog{Ecosystems: []PackageList{{Name: "python", Packages: []string{"requests"}}}}
	assert.Error(t, Validate(cat))
}
