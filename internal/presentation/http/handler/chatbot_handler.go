package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/request"
	"github.com/meditrack/pharmacy-pos-api/internal/presentation/http/dto/response"
)

// ChatbotHandler handles pharmacy assistant HTTP requests
type ChatbotHandler struct {
	chatbotService *service.ChatbotService
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(chatbotService *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// Message handles classifying a user message and generating a reply
func (h *ChatbotHandler) Message(c *gin.Context) {
	var req request.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	reply, err := h.chatbotService.Reply(req.Message, req.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Message processed successfully", reply)
}

// Suggestions handles listing starter questions
func (h *ChatbotHandler) Suggestions(c *gin.Context) {
	response.OK(c, "Suggestions retrieved successfully", h.chatbotService.Suggestions())
}

// Feedback handles storing a rating of an assistant reply
func (h *ChatbotHandler) Feedback(c *gin.Context) {
	var req request.ChatFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	entry := h.chatbotService.RecordFeedback(&service.ChatFeedback{
		SessionID: req.SessionID,
		MessageID: req.MessageID,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
	})

	response.OK(c, "Thank you for your feedback!", entry)
}

// History handles returning a session's conversation history
func (h *ChatbotHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	response.OK(c, "History retrieved successfully", gin.H{
		"sessionId": sessionID,
		"messages":  h.chatbotService.History(sessionID),
	})
}
