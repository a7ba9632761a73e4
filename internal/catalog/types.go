package catalog

// LatestVersion is the sentinel version meaning "whatever the repository
// currently serves". Entries with this version (or an empty one) are
// installed without an explicit version constraint.
const LatestVersion = "latest"

// Install sources understood by the installer. An empty Source is treated
// as SourceBrew.
const (
	SourceBrew   = "brew"   // install through the system package manager
	SourceGitHub = "github" // download a release asset directly from GitHub
)

// Entry represents one tool in the catalog.
// - Name: Logical name for the tool, also the package-manager package name.
// - Version: Version to install, or the "latest" sentinel.
// - Source/Repo/Tag: Used for resolving the installation method when the
//   entry bypasses the package manager (e.g., GitHub releases).
type Entry struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Source  string `yaml:"source"`
	Repo    string `yaml:"repo"`
	Tag     string `yaml:"tag"`
}

// Pinned reports whether the entry requests a specific version rather than
// the "latest" sentinel.
func (e Entry) Pinned() bool {
	return e.Version != "" && e.Version != LatestVersion
}

// Tier is a named priority group of catalog entries installed as a batch.
// Tiers are installed in declared order; entries within a tier are logically
// independent, but declaration order is preserved so runs are reproducible.
type Tier struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"tools"`
}

// PackageList describes a secondary ecosystem: a package index reached
// through its own CLI (e.g., pip3, npm), installed after the primary tiers.
// - Command: the ecosystem's own command-line tool, also used as the
//   availability gate before any install is attempted.
// - InstallArgs: arguments placed before the package name, e.g.
//   ["install", "--upgrade"] for pip or ["install", "-g"] for npm.
// - Packages: bare package names, always "latest" semantics.
type PackageList struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	InstallArgs []string `yaml:"install_args"`
	Packages    []string `yaml:"packages"`
}

// VerificationEntry maps an expected executable to the argument used to
// probe it after installation. The probe succeeds when the process exits
// with status zero.
type VerificationEntry struct {
	Executable string `yaml:"exe"`
	ProbeArg   string `yaml:"arg"`
}

// DefaultProbeArg is used when a verification entry does not specify one.
const DefaultProbeArg = "--version"

// Catalog is the top-level declarative input for a run: the tiers to
// install through the package manager, the secondary-ecosystem package
// lists, and the post-install verification sweep.
type Catalog struct {
	Tiers      []Tier              `yaml:"tiers"`
	Ecosystems []PackageList       `yaml:"ecosystems"`
	Verify     []VerificationEntry `yaml:"verify"`
}
