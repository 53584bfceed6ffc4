package domain

// ChatSender identifies who wrote a chat turn.
type ChatSender string

const (
	SenderUser      ChatSender = "me"
	SenderAssistant ChatSender = "assistant"
)

// ChatTurn is one prior turn of the assistant conversation. The upstream
// text API is stateless, so the full history travels with every request
// and is stringified into the prompt.
type ChatTurn struct {
	Sender ChatSender `json:"sender" validate:"required,oneof=me assistant" example:"me"`
	Text   string     `json:"text" validate:"required,max=4000" example:"How can I lower my resting heart rate?"`
}

// AssistantRequest is the request body for the health assistant endpoint.
// @Description Chat message with optional prior turns and an optional
// @Description base64 JPEG image for quick analysis.
type AssistantRequest struct {
	// Current user message
	Message string `json:"message" validate:"required,max=4000" example:"Suggest a short evening wind-down routine"`
	// Prior conversation turns, oldest first
	History []ChatTurn `json:"history,omitempty" validate:"omitempty,max=50,dive"`
	// Optional base64-encoded JPEG (data URL prefix tolerated)
	ImageBase64 string `json:"image_base64,omitempty"`
}

// AssistantResponse is the assistant's reply.
// @Description Assistant reply text, with a trace id when tracing is enabled.
type AssistantResponse struct {
	Reply string `json:"reply" example:"Try 4-7-8 breathing, then 10 minutes of light stretching."`
	// Trace ID for feedback (present only when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// AssistantFeedbackRequest scores a previous assistant reply.
type AssistantFeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"Concise and useful"`
}
