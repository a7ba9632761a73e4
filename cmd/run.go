package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bootstrap-machine/internal/bootstrap"
	"bootstrap-machine/internal/catalog"
	"bootstrap-machine/internal/guide"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/report"
)

// catalogPath holds the path to an optional catalog YAML file.
// When empty, the built-in default catalog is used.
var catalogPath string

// reportFile is where the final report is persisted as JSON.
// An empty value disables persistence.
var reportFile string

// Coarse-grained phase toggles: each suppresses a whole phase before it
// starts.
var (
	skipVerify bool
	skipGuide  bool
)

// runCmd is the top-level command driving the full pipeline: privilege
// check, package-manager bootstrap, tiers, secondary ecosystems, the
// verification sweep, the optional guide step, and the final summary.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bootstrap the machine from the catalog (tiers, ecosystems, verify)",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()

		// The only two fatal conditions of a run, checked before any phase.
		if err := bootstrap.RequireElevation(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
		if err := bootstrap.EnsureAvailable(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		logger.Header("=== Bootstrapping machine (%d tiers, %d ecosystems) ===\n",
			len(cat.Tiers), len(cat.Ecosystems))

		// Everything from here on is tolerant: failures become tallies and
		// the run still exits zero.
		overall := installer.Run(cat, installer.Options{SkipVerify: skipVerify})

		if !skipGuide {
			guide.Run(guide.Default())
		}

		report.Render(overall)
		if reportFile != "" {
			report.WriteFile(reportFile, overall)
		}
	},
}

// runTiersCmd runs only the package-manager tiers.
var runTiersCmd = &cobra.Command{
	Use:   "tools",
	Short: "Install only the catalog tiers",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()
		if err := bootstrap.RequireElevation(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
		if err := bootstrap.EnsureAvailable(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		var overall report.Overall
		for _, tier := range cat.Tiers {
			overall.Phases = append(overall.Phases, report.Phase{
				Name:  "tier:" + tier.Name,
				Tally: installer.RunTier(tier),
			})
		}
		report.Render(overall)
	},
}

// runEcosystemsCmd runs only the secondary-ecosystem package lists.
var runEcosystemsCmd = &cobra.Command{
	Use:   "ecosystems",
	Short: "Install only the secondary-ecosystem packages",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()

		var overall report.Overall
		for _, eco := range cat.Ecosystems {
			overall.Phases = append(overall.Phases, report.Phase{
				Name:  "ecosystem:" + eco.Name,
				Tally: installer.RunPackageList(eco),
			})
		}
		report.Render(overall)
	},
}

// runVerifyCmd runs only the verification sweep. Useful to re-check an
// already bootstrapped machine; installs nothing.
var runVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe the expected executables without installing anything",
	Run: func(cmd *cobra.Command, args []string) {
		cat := loadCatalog()

		verification := report.Phase{Name: "verify", Tally: installer.VerifyAll(cat.Verify)}
		report.Render(report.Overall{Verification: &verification})
	},
}

// loadCatalog returns the catalog for this run: the YAML file when one was
// given, the built-in default otherwise. A broken catalog file aborts the
// run before any phase starts.
func loadCatalog() catalog.Catalog {
	if catalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
	return cat
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	// Catalog and report locations, shared by the subcommands.
	runCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a catalog YAML file (built-in catalog if omitted)")
	runCmd.PersistentFlags().StringVar(&reportFile, "report-file", "", "Write the final report as JSON to this path")

	// Phase toggles for the full pipeline.
	runCmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "Skip the post-install verification sweep")
	runCmd.Flags().BoolVar(&skipGuide, "skip-guide", false, "Skip the optional companion-app setup step")

	// Add subcommands for more granular control.
	runCmd.AddCommand(runTiersCmd)
	runCmd.AddCommand(runEcosystemsCmd)
	runCmd.AddCommand(runVerifyCmd)
	// Register the `run` command with the root command.
	rootCmd.AddCommand(runCmd)
}
