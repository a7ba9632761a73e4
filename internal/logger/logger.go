package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for the different message levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Header prints top-of-run banners in bold bright cyan.
// Used once per major stage (e.g., the run banner and the final summary banner).
var Header = color.New(color.FgHiCyan, color.Bold).PrintfFunc()

// Section announces the start of a pipeline phase in blue.
// Each tier, ecosystem, and the verification sweep opens with a Section line.
var Section = color.New(color.FgBlue).PrintfFunc()

// Success logs successful outcomes in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Success = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// This is a function variable that is assigned dynamically during Init based on the debug flag.
// When debug logging is disabled, Debug is assigned to an empty function that does nothing.
var Debug func(format string, a ...any)

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		// Assign Debug to a no-op function that ignores all debug logs to avoid runtime overhead.
		Debug = func(format string, a ...any) {}
	}
}

// init makes Debug safe to call even before Init runs (e.g., from package
// init code or tests that never touch the CLI entry point).
func init() {
	Init(false)
}
