package router

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"ai-lifeboard-be/pkg/assistant/hooks"
	"ai-lifeboard-be/pkg/assistant/intent"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestDispatchRoutesToOwner(t *testing.T) {
	var got string
	reg, err := NewRegistry(Module{
		Name:    hooks.DomainFinance,
		Actions: []string{"ADD_EXPENSE"},
		Execute: func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome {
			got = action
			return Applied(action)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(reg, testLogger())
	outcome := d.Dispatch(context.Background(), intent.Intent{Action: "ADD_EXPENSE", Data: map[string]any{}}, hooks.Capabilities{})

	if got != "ADD_EXPENSE" {
		t.Errorf("executor saw action %q, want ADD_EXPENSE", got)
	}
	if outcome.Status != StatusApplied {
		t.Errorf("outcome status = %s, want applied", outcome.Status)
	}
}

func TestDispatchUnownedActionIsUnhandled(t *testing.T) {
	reg, err := NewRegistry(Module{
		Name:    hooks.DomainFinance,
		Actions: []string{"ADD_EXPENSE"},
		Execute: func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome {
			t.Fatal("executor must not run for unowned actions")
			return Outcome{}
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(reg, testLogger())
	for _, action := range []string{intent.ActionChat, intent.ActionNavigate, "MAKE_COFFEE"} {
		outcome := d.Dispatch(context.Background(), intent.Intent{Action: action}, hooks.Capabilities{})
		if outcome.Status != StatusUnhandled {
			t.Errorf("Dispatch(%s) status = %s, want unhandled", action, outcome.Status)
		}
	}
}

func TestDispatchCapabilitySubsetting(t *testing.T) {
	reg, err := NewRegistry(Module{
		Name:    hooks.DomainTasks,
		Actions: []string{"ADD_TASK"},
		Execute: func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome {
			if caps.Tasks == nil {
				t.Error("owning domain's hooks should be present")
			}
			if caps.Finance != nil || caps.Notes != nil || caps.Habits != nil ||
				caps.Study != nil || caps.Inventory != nil {
				t.Error("foreign domain hooks leaked into executor")
			}
			return Applied(action)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	full := hooks.Capabilities{
		Finance:   stubFinance{},
		Tasks:     stubTasks{},
		Notes:     stubNotes{},
		Habits:    stubHabits{},
		Study:     stubStudy{},
		Inventory: stubInventory{},
	}

	d := NewDispatcher(reg, testLogger())
	d.Dispatch(context.Background(), intent.Intent{Action: "ADD_TASK"}, full)
}

func TestDispatchRecoversExecutorPanic(t *testing.T) {
	reg, err := NewRegistry(Module{
		Name:    hooks.DomainNotes,
		Actions: []string{"ADD_NOTE"},
		Execute: func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome {
			panic("boom")
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(reg, testLogger())
	outcome := d.Dispatch(context.Background(), intent.Intent{Action: "ADD_NOTE"}, hooks.Capabilities{})

	if outcome.Status != StatusFailed {
		t.Fatalf("panic should produce failed outcome, got %s", outcome.Status)
	}
	if outcome.Err == nil {
		t.Error("failed outcome should carry the panic as an error")
	}
}

func TestRunBatchSequentialAndContinuesPastFailures(t *testing.T) {
	var order []string
	reg, err := NewRegistry(Module{
		Name:    hooks.DomainFinance,
		Actions: []string{"OK_ACTION", "FAIL_ACTION"},
		Execute: func(ctx context.Context, action string, data map[string]any, caps hooks.Capabilities) Outcome {
			order = append(order, action)
			if action == "FAIL_ACTION" {
				return Failed(action, errors.New("storage down"))
			}
			return Applied(action)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(reg, testLogger())
	intents := []intent.Intent{
		{Action: "OK_ACTION"},
		{Action: "FAIL_ACTION"},
		{Action: "OK_ACTION"},
	}

	outcomes := d.RunBatch(context.Background(), intents, hooks.Capabilities{})

	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want one per intent", len(outcomes))
	}
	wantOrder := []string{"OK_ACTION", "FAIL_ACTION", "OK_ACTION"}
	for i, action := range wantOrder {
		if order[i] != action {
			t.Errorf("execution order[%d] = %s, want %s", i, order[i], action)
		}
	}
	if outcomes[1].Status != StatusFailed {
		t.Errorf("outcome[1] = %s, want failed", outcomes[1].Status)
	}
	if outcomes[2].Status != StatusApplied {
		t.Errorf("outcome[2] = %s, want applied; failure must not abort the batch", outcomes[2].Status)
	}
}

func TestRunBatchEmpty(t *testing.T) {
	reg, err := NewRegistry(Module{Name: "finance", Actions: []string{"X"}, Execute: noopExecutor})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(reg, testLogger())

	outcomes := d.RunBatch(context.Background(), nil, hooks.Capabilities{})
	if len(outcomes) != 0 {
		t.Errorf("empty batch should yield no outcomes, got %d", len(outcomes))
	}
}
