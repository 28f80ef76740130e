package router

import (
	"context"
	"fmt"
	"log"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/intent"
)

// Dispatcher routes one intent to the module owning its action and hands that
// module only its own domain's capability subset.
type Dispatcher struct {
	registry *Registry
	logger   *log.Logger
}

func NewDispatcher(registry *Registry, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch handles exactly one intent. Unowned actions (CHAT, NAVIGATE, or
// anything unrecognized) are logged and returned as Unhandled, never an error.
func (d *Dispatcher) Dispatch(ctx context.Context, it intent.Intent, caps hooks.Capabilities) Outcome {
	mod, ok := d.registry.Owner(it.Action)
	if !ok {
		d.logger.Printf("[DISPATCH] no module owns action %q, leaving to host", it.Action)
		return Unhandled(it.Action)
	}

	outcome := d.safeExecute(ctx, mod, it, subsetFor(mod.Name, caps))

	switch outcome.Status {
	case StatusNotFound:
		d.logger.Printf("[DISPATCH] %s: no entity matched %q", it.Action, outcome.Reference)
	case StatusSkipped:
		d.logger.Printf("[DISPATCH] %s skipped: %s", it.Action, outcome.Detail)
	case StatusFailed:
		d.logger.Printf("[ERROR] %s failed: %v", it.Action, outcome.Err)
	}

	return outcome
}

// RunBatch dispatches intents strictly one at a time, in order, collecting one
// outcome per intent. Ordering is a correctness guarantee: later intents may
// reference entities created by earlier ones ("add subject Physics, add
// chapter Waves to Physics"). Failures do not abort the remainder.
func (d *Dispatcher) RunBatch(ctx context.Context, intents []intent.Intent, caps hooks.Capabilities) []Outcome {
	outcomes := make([]Outcome, 0, len(intents))
	for _, it := range intents {
		outcomes = append(outcomes, d.Dispatch(ctx, it, caps))
	}
	return outcomes
}

// safeExecute converts an executor panic into a Failed outcome so one bad
// batch item cannot take down its siblings.
func (d *Dispatcher) safeExecute(ctx context.Context, mod Module, it intent.Intent, caps hooks.Capabilities) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Failed(it.Action, fmt.Errorf("executor panic in module %q: %v", mod.Name, r))
		}
	}()
	return mod.Execute(ctx, it.Action, it.Data, caps)
}

// subsetFor blanks every capability except the owning domain's, so an executor
// can never reach across domains.
func subsetFor(domain string, caps hooks.Capabilities) hooks.Capabilities {
	switch domain {
	case hooks.DomainFinance:
		return hooks.Capabilities{Finance: caps.Finance}
	case hooks.DomainTasks:
		return hooks.Capabilities{Tasks: caps.Tasks}
	case hooks.DomainNotes:
		return hooks.Capabilities{Notes: caps.Notes}
	case hooks.DomainHabits:
		return hooks.Capabilities{Habits: caps.Habits}
	case hooks.DomainStudy:
		return hooks.Capabilities{Study: caps.Study}
	case hooks.DomainInventory:
		return hooks.Capabilities{Inventory: caps.Inventory}
	default:
		return hooks.Capabilities{}
	}
}
