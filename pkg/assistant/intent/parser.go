package intent

import (
	"encoding/json"
	"strings"
)

// envelope covers both response shapes the model may produce: a single intent
// object, or a batch object whose actions array shares one response_text.
type envelope struct {
	Action       string         `json:"action"`
	Data         map[string]any `json:"data"`
	ResponseText string         `json:"response_text"`
	Actions      []batchItem    `json:"actions"`
}

type batchItem struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

// Parse turns raw model output into one or more intents. It never fails: any
// malformed input degrades to the single CHAT fallback so a broken model
// response cannot crash the conversation.
func Parse(raw string) []Intent {
	jsonContent := extractJSON(raw)
	if jsonContent == "" {
		return Fallback()
	}

	var env envelope
	if err := json.Unmarshal([]byte(jsonContent), &env); err != nil {
		return Fallback()
	}

	responseText := env.ResponseText
	if responseText == "" {
		responseText = DefaultResponse
	}

	// Batch shape: fan out, every intent carries the shared response_text
	if len(env.Actions) > 0 {
		intents := make([]Intent, 0, len(env.Actions))
		for _, item := range env.Actions {
			intents = append(intents, normalize(item.Action, item.Data, responseText))
		}
		return intents
	}

	return []Intent{normalize(env.Action, env.Data, responseText)}
}

// Fallback returns the single synthetic CHAT intent used when parsing fails or
// the completion call itself errors.
func Fallback() []Intent {
	return []Intent{{
		Action:       ActionChat,
		Data:         map[string]any{},
		ResponseText: ApologyResponse,
	}}
}

func normalize(action string, data map[string]any, responseText string) Intent {
	action = strings.ToUpper(strings.TrimSpace(action))
	if action == "" {
		action = ActionChat
	}
	if data == nil {
		data = map[string]any{}
	}
	return Intent{
		Action:       action,
		Data:         data,
		ResponseText: responseText,
	}
}

// extractJSON pulls the outermost JSON object out of a response that may be
// wrapped in prose or markdown fences.
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
