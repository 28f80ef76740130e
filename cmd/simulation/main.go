package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"ai-lifeboard-be/internal/config"
	"ai-lifeboard-be/internal/repository/memory"
	"ai-lifeboard-be/pkg/assistant/intent"
	"ai-lifeboard-be/pkg/assistant/modules"
	"ai-lifeboard-be/pkg/assistant/prompt"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
	"ai-lifeboard-be/pkg/llm"
	"ai-lifeboard-be/pkg/llm/factory"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Interactive REPL against the full intent pipeline and the in-memory store.
// No server, no postgres: type text, watch which actions get dispatched.
func main() {
	color.Cyan("🚀 Assistant Intent Pipeline Simulation\n")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		color.Red("Invalid configuration: %v", err)
		os.Exit(1)
	}

	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMApiKey,
	)
	if err != nil {
		color.Red("Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}
	color.Yellow("Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	registry, err := modules.DefaultRegistry(resolve.NewSubstring())
	if err != nil {
		color.Red("Failed to build registry: %v", err)
		os.Exit(1)
	}
	dispatcher := router.NewDispatcher(registry, log.New(os.Stdout, "", log.LstdFlags))

	store := memory.NewStore()
	userId := uuid.New()
	color.Yellow("User: %s (in-memory store)\n", userId)

	systemPrompt := prompt.BuildSystemPrompt(registry, "")
	history := []llm.Message{{Role: "system", Content: systemPrompt}}
	ctx := context.Background()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Print("> ")
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		history = append(history, llm.Message{Role: "user", Content: text})

		raw, err := provider.Chat(ctx, history,
			llm.WithTemperature(0.3),
			llm.WithMaxTokens(512),
			llm.WithJSONOutput(),
		)

		var intents []intent.Intent
		if err != nil {
			color.Red("LLM error: %v", err)
			intents = intent.Fallback()
		} else {
			intents = intent.Parse(raw)
		}

		outcomes := dispatcher.RunBatch(ctx, intents, store.Hooks(userId))
		for _, o := range outcomes {
			switch o.Status {
			case router.StatusApplied:
				color.Green("  ✔ %s", o.Action)
			case router.StatusUnhandled:
				color.Yellow("  · %s (host-handled)", o.Action)
			case router.StatusNotFound:
				color.Red("  ✘ %s: nothing matched %q", o.Action, o.Reference)
			case router.StatusSkipped:
				color.Red("  ✘ %s skipped: %s", o.Action, o.Detail)
			case router.StatusFailed:
				color.Red("  ✘ %s failed: %v", o.Action, o.Err)
			}
		}

		reply := intents[0].ResponseText
		color.Cyan("AI: %s\n", reply)
		history = append(history, llm.Message{Role: "assistant", Content: reply})

		// Keep the trailing window bounded like the service does
		if len(history) > 21 {
			history = append(history[:1], history[len(history)-20:]...)
		}

		fmt.Print("> ")
	}
}
