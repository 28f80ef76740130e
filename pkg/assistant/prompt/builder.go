package prompt

import (
	"strings"

	"ai-lifeboard-be/pkg/assistant/router"
)

// BuildSystemPrompt assembles the full system prompt from the registry plus an
// optional live application-context block. Pure function of its inputs: same
// registry and pageContext always produce the same string, which keeps prompt
// construction testable without a network call.
func BuildSystemPrompt(registry *router.Registry, pageContext string) string {
	var prompt strings.Builder

	prompt.WriteString(personaDocument)
	prompt.WriteString("\n\n")

	writeActionIndex(&prompt, registry)

	for _, mod := range registry.Modules() {
		prompt.WriteString(mod.PromptFragment)
		prompt.WriteString("\n\n")
	}

	prompt.WriteString(workedExamples)

	if pageContext != "" {
		prompt.WriteString("\n\n=== CURRENT APP CONTEXT ===\n")
		prompt.WriteString(pageContext)
	}

	return prompt.String()
}

// writeActionIndex emits one "<DOMAIN>: action, action, ..." line per module,
// plus the synthetic navigation line (NAVIGATE has no owning module).
func writeActionIndex(prompt *strings.Builder, registry *router.Registry) {
	prompt.WriteString("AVAILABLE ACTIONS:\n")
	for _, mod := range registry.Modules() {
		prompt.WriteString(strings.ToUpper(mod.Name))
		prompt.WriteString(": ")
		prompt.WriteString(strings.Join(mod.Actions, ", "))
		prompt.WriteString("\n")
	}
	prompt.WriteString("NAVIGATION: NAVIGATE\n\n")
}
