// Package guide holds the optional post-run setup step. The orchestrator
// invokes the registered step after the install pipeline unless the caller
// suppressed it with a toggle; a step failure is logged, never fatal.
package guide

import (
	"bootstrap-machine/internal/logger"
)

// Step is a capability the orchestrator can run after the pipeline without
// knowing anything about it beyond its name.
type Step interface {
	Name() string
	Run() error
}

// docsPointer is the default step: it points the user at the companion
// application's setup documentation instead of walking them through it.
type docsPointer struct{}

func (docsPointer) Name() string { return "companion app setup" }

func (docsPointer) Run() error {
	logger.Section("[PHASE] Optional: companion application setup\n")
	logger.Success("[INFO] Tools are in place. See the companion app's own docs to finish its setup.\n")
	return nil
}

// Default returns the step invoked when none has been registered.
func Default() Step {
	return docsPointer{}
}

// Run executes one step, converting its failure into a logged warning.
func Run(step Step) {
	logger.Debug("[DEBUG] Running optional step %q\n", step.Name())
	if err := step.Run(); err != nil {
		logger.Warn("[WARN] Optional step %q failed: %v\n", step.Name(), err)
	}
}
