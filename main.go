package main

import (
	"bootstrap-machine/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The bootstrap-machine project is a dependency-bootstrapping orchestrator that:
//   - Ensures the system package manager (Homebrew) is present, installing it once if missing
//   - Installs a declarative catalog of tools tier by tier through the package manager,
//     tolerating individual failures and counting them per tier
//   - Installs secondary-ecosystem packages (pip, npm) through each ecosystem's own CLI,
//     gated on that CLI being reachable
//   - Re-probes the expected executables after installation and reports which respond
//   - Aggregates every phase's success/failure tally into a final printed summary,
//     optionally persisted as JSON
//
// Error handling strategy:
//   - Only two conditions are fatal: missing administrator-equivalent privilege and a
//     failed package-manager bootstrap. Both terminate the run with exit code 1 before
//     any further phase executes.
//   - Every individual install or probe failure is captured as data, reported by name
//     when it occurs and again in the summary, and never aborts the run — a run with
//     failures still exits zero.
//   - Anything unexpected is caught once at the top level and converted to exit code 1.
func main() {
	cmd.Execute()
}
