package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"bootstrap-machine/internal/logger"
)

// Load reads a catalog YAML file and returns the validated Catalog.
// The file wraps everything under a top-level `catalog:` key:
//
//	catalog:
//	  tiers:
//	    - name: primary
//	      tools:
//	        - name: git
//	          version: latest
//	  ecosystems:
//	    - name: python
//	      command: pip3
//	      install_args: ["install", "--upgrade"]
//	      packages: [virtualenv]
//	  verify:
//	    - exe: git
//	      arg: --version
func Load(path string) (Catalog, error) {
	// Read the whole catalog file into memory
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	// wrapper mirrors the file's top-level `catalog:` key
	var wrapper struct {
		Catalog Catalog `yaml:"catalog"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return Catalog{}, fmt.Errorf("failed to unmarshal catalog file %s: %w", path, err)
	}

	cat := wrapper.Catalog
	applyDefaults(&cat)
	if err := Validate(cat); err != nil {
		return Catalog{}, err
	}

	logger.Debug("[DEBUG] Loaded catalog from %s: %d tiers, %d ecosystems, %d verification entries\n",
		path, len(cat.Tiers), len(cat.Ecosystems), len(cat.Verify))
	return cat, nil
}

// applyDefaults fills in the fields the YAML is allowed to omit.
func applyDefaults(cat *Catalog) {
	for i := range cat.Verify {
		if cat.Verify[i].ProbeArg == "" {
			cat.Verify[i].ProbeArg = DefaultProbeArg
		}
	}
}

// Validate checks structural requirements the rest of the pipeline relies on:
// every entry and package is named, ecosystems carry their gate command, and
// pinned versions parse as semantic versions. The "latest" sentinel (or an
// empty version) is always accepted.
func Validate(cat Catalog) error {
	for _, tier := range cat.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("catalog tier without a name")
		}
		for _, entry := range tier.Entries {
			if entry.Name == "" {
				return fmt.Errorf("tier %q has an entry without a name", tier.Name)
			}
			if entry.Pinned() {
				// Accept both "1.2.3" and "v1.2.3" spellings for pinned versions.
				if _, err := semver.NewVersion(strings.TrimPrefix(entry.Version, "v")); err != nil {
					return fmt.Errorf("tier %q entry %q: invalid version %q: %w",
						tier.Name, entry.Name, entry.Version, err)
				}
			}
			switch entry.Source {
			case "", SourceBrew, SourceGitHub:
			default:
				return fmt.Errorf("tier %q entry %q: unknown source %q", tier.Name, entry.Name, entry.Source)
			}
		}
	}

	for _, eco := range cat.Ecosystems {
		if eco.Name == "" {
			return fmt.Errorf("catalog ecosystem without a name")
		}
		if eco.Command == "" {
			return fmt.Errorf("ecosystem %q has no command", eco.Name)
		}
		for _, pkg := range eco.Packages {
			if pkg == "" {
				return fmt.Errorf("ecosystem %q has an empty package name", eco.Name)
			}
		}
	}

	for _, v := range cat.Verify {
		if v.Executable == "" {
			return fmt.Errorf("verification entry without an executable name")
		}
	}
	return nil
}
