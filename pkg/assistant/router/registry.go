package router

import (
	"context"
	"fmt"

	"ai-lifeboard-be/pkg/assistant/hooks"
)

// Executor maps one (action, data) pair onto hook mutations for its domain.
type Executor func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome

// Module declares one domain: its key, the action names it owns, the
// natural-language capability documentation injected into the system prompt,
// and the executor that handles its actions.
type Module struct {
	Name           string
	Actions        []string
	PromptFragment string
	Execute        Executor
}

// Registry is the immutable set of registered modules, built once at startup.
type Registry struct {
	modules []Module
	owners  map[string]int // action name -> index into modules
}

// NewRegistry validates that action names are pairwise disjoint across modules
// and rejects control actions masquerading as domain actions. Overlap is a
// wiring bug; failing at startup beats first-match-wins at dispatch time.
func NewRegistry(modules ...Module) (*Registry, error) {
	owners := make(map[string]int)
	for i, mod := range modules {
		if mod.Name == "" {
			return nil, fmt.Errorf("module at index %d has no name", i)
		}
		if mod.Execute == nil {
			return nil, fmt.Errorf("module %q has no executor", mod.Name)
		}
		for _, action := range mod.Actions {
			if prev, exists := owners[action]; exists {
				return nil, fmt.Errorf("action %q declared by both %q and %q",
					action, modules[prev].Name, mod.Name)
			}
			owners[action] = i
		}
	}

	return &Registry{
		modules: modules,
		owners:  owners,
	}, nil
}

// Modules returns the registered modules in registration order.
func (r *Registry) Modules() []Module {
	return r.modules
}

// Owner returns the module that declared the given action.
func (r *Registry) Owner(action string) (Module, bool) {
	idx, ok := r.owners[action]
	if !ok {
		return Module{}, false
	}
	return r.modules[idx], true
}
