package modules

import (
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// DefaultRegistry wires all six domain modules with the given resolution
// strategy. The registry rejects overlapping action names at construction.
func DefaultRegistry(resolver resolve.Strategy) (*router.Registry, error) {
	return router.NewRegistry(
		NewFinanceModule(resolver),
		NewTasksModule(resolver),
		NewNotesModule(resolver),
		NewHabitsModule(resolver),
		NewStudyModule(resolver),
		NewInventoryModule(resolver),
	)
}
