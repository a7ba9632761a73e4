package catalog

// Default returns the built-in catalog used when no --catalog file is given.
// The primary tier holds the tools everything else leans on; the secondary
// tier holds quality-of-life utilities. Both go through the package manager.
func Default() Catalog {
	return Catalog{
		Tiers: []Tier{
			{
				Name: "primary",
				Entries: []Entry{
					{Name: "git", Version: LatestVersion},
					{Name: "curl", Version: LatestVersion},
					{Name: "jq", Version: LatestVersion},
					{Name: "python", Version: LatestVersion},
					{Name: "node", Version: LatestVersion},
				},
			},
			{
				Name: "secondary",
				Entries: []Entry{
					{Name: "ripgrep", Version: LatestVersion},
					{Name: "fzf", Version: LatestVersion},
					{Name: "tmux", Version: LatestVersion},
					{Name: "htop", Version: LatestVersion},
					{Name: "shellcheck", Version: LatestVersion},
				},
			},
		},
		Ecosystems: []PackageList{
			{
				Name:        "python",
				Command:     "pip3",
				InstallArgs: []string{"install", "--upgrade"},
				Packages:    []string{"virtualenv", "requests", "httpie"},
			},
			{
				Name:        "node",
				Command:     "npm",
				InstallArgs: []string{"install", "-g"},
				Packages:    []string{"typescript", "eslint", "prettier"},
			},
		},
		Verify: []VerificationEntry{
			{Executable: "git", ProbeArg: DefaultProbeArg},
			{Executable: "jq", ProbeArg: DefaultProbeArg},
			{Executable: "python3", ProbeArg: DefaultProbeArg},
			{Executable: "pip3", ProbeArg: DefaultProbeArg},
			{Executable: "node", ProbeArg: DefaultProbeArg},
			{Executable: "npm", ProbeArg: DefaultProbeArg},
			{Executable: "rg", ProbeArg: DefaultProbeArg},
		},
	}
}
