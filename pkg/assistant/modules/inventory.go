package modules

import (
	"context"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
)

// Inventory action names
const (
	ActionAddInventoryItem    = "ADD_INVENTORY_ITEM"
	ActionUpdateInventoryItem = "UPDATE_INVENTORY_ITEM"
	ActionDeleteInventoryItem = "DELETE_INVENTORY_ITEM"
)

const inventoryPrompt = `INVENTORY RULES:
- ADD_INVENTORY_ITEM data: {"name": string, "quantity": number, "location": string}.
  Quantity defaults to 1, location to "general".
- UPDATE_INVENTORY_ITEM data: {"name": string, "quantity": number, "location": string}.
  "name" locates the item (partial names are fine); quantity/location are the changes.
- DELETE_INVENTORY_ITEM data: {"name": string}.`

type inventoryExecutor struct {
	resolver resolve.Strategy
}

// NewInventoryModule builds the inventory module descriptor.
func NewInventoryModule(resolver resolve.Strategy) router.Module {
	e := &inventoryExecutor{resolver: resolver}
	return router.Module{
		Name:           hooks.DomainInventory,
		Actions:        []string{ActionAddInventoryItem, ActionUpdateInventoryItem, ActionDeleteInventoryItem},
		PromptFragment: inventoryPrompt,
		Execute:        e.execute,
	}
}

func (e *inventoryExecutor) execute(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) router.Outcome {
	inv := caps.Inventory

	switch action {
	case ActionAddInventoryItem:
		name := str(data, "name")
		if name == "" {
			return router.Skipped(action, "inventory item needs a name")
		}
		item := hooks.NewInventoryItem{
			Name:     name,
			Quantity: numDefault(data, "quantity", 1),
			Location: strDefault(data, "location", "general"),
		}
		if err := inv.AddItem(ctx, item); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionUpdateInventoryItem:
		match, outcome, ok := e.resolveItem(ctx, inv, action, data)
		if !ok {
			return outcome
		}
		patch := hooks.InventoryPatch{}
		if q, hasQ := num(data, "quantity"); hasQ {
			patch.Quantity = &q
		}
		if loc := str(data, "location"); loc != "" {
			patch.Location = &loc
		}
		if err := inv.UpdateItem(ctx, match.Id, patch); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	case ActionDeleteInventoryItem:
		match, outcome, ok := e.resolveItem(ctx, inv, action, data)
		if !ok {
			return outcome
		}
		if err := inv.DeleteItem(ctx, match.Id); err != nil {
			return router.Failed(action, err)
		}
		return router.Applied(action)

	default:
		return router.Unhandled(action)
	}
}

func (e *inventoryExecutor) resolveItem(ctx context.Context, inv hooks.InventoryHooks, action string, data map[string]any) (resolve.Candidate, router.Outcome, bool) {
	name := str(data, "name")
	all, err := inv.Items(ctx)
	if err != nil {
		return resolve.Candidate{}, router.Failed(action, err), false
	}

	candidates := make([]resolve.Candidate, len(all))
	for i, item := range all {
		candidates[i] = resolve.Candidate{Id: item.Id, Name: item.Name}
	}

	match, found := e.resolver.Resolve(name, candidates)
	if !found {
		return resolve.Candidate{}, router.NotFound(action, name), false
	}
	return match, router.Outcome{}, true
}
