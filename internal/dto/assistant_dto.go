package dto

type AssistantMessageRequest struct {
	Message     string `json:"message" validate:"required"`
	PageContext string `json:"page_context,omitempty"`
}

// OutcomeDTO reports what one dispatched intent did, in dispatch order.
type OutcomeDTO struct {
	Action    string `json:"action"`
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

type AssistantMessageResponse struct {
	Reply      string       `json:"reply"`
	NavigateTo string       `json:"navigate_to,omitempty"`
	Outcomes   []OutcomeDTO `json:"outcomes"`
}
