package intent

// Intent is one structured action derived from free-form user text.
type Intent struct {
	Action       string         `json:"action"`
	Data         map[string]any `json:"data"`
	ResponseText string         `json:"response_text"`
}

// Control actions handled by the host UI layer, not by any domain module.
const (
	ActionChat     = "CHAT"
	ActionNavigate = "NAVIGATE"
)

// DefaultResponse fills in when the model omits response_text.
const DefaultResponse = "Done! Let me know if there's anything else."

// ApologyResponse is the reply attached to the fallback intent when the model
// output could not be parsed at all.
const ApologyResponse = "Sorry, I had trouble processing that. Could you rephrase it?"
