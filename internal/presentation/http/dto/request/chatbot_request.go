package request

// ChatMessageRequest is one user message to the assistant
type ChatMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// ChatFeedbackRequest rates an assistant reply
type ChatFeedbackRequest struct {
	SessionID string `json:"sessionId"`
	MessageID string `json:"messageId"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback"`
}
