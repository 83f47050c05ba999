package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meditrack/pharmacy-pos-api/internal/application/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatbotRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	chatbot := NewChatbotHandler(service.NewChatbotService(
		service.NewCatalogService(service.DefaultMedicines())))

	router := gin.New()
	router.POST("/chatbot/message", chatbot.Message)
	router.GET("/chatbot/suggestions", chatbot.Suggestions)
	router.POST("/chatbot/feedback", chatbot.Feedback)
	router.GET("/chatbot/history/:sessionId", chatbot.History)
	return router
}

func TestChatbotMessage(t *testing.T) {
	router := newChatbotRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/chatbot/message", `{
		"message": "What's the price of Paracetamol?",
		"sessionId": "s1"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var reply struct {
		Response    string   `json:"response"`
		Intent      string   `json:"intent"`
		Suggestions []string `json:"suggestions"`
		SessionID   string   `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, "price_inquiry", reply.Intent)
	assert.Contains(t, reply.Response, "$2.50")
	assert.Equal(t, "s1", reply.SessionID)
}

func TestChatbotMessage_MissingMessage(t *testing.T) {
	router := newChatbotRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/chatbot/message", `{"sessionId": "s1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestChatbotSuggestions(t *testing.T) {
	router := newChatbotRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/chatbot/suggestions", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var suggestions []string
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	assert.NotEmpty(t, suggestions)
}

func TestChatbotHistory(t *testing.T) {
	router := newChatbotRouter(t)

	_, _ = doJSON(t, router, http.MethodPost, "/chatbot/message", `{
		"message": "Hello",
		"sessionId": "s1"
	}`)

	rec, env := doJSON(t, router, http.MethodGet, "/chatbot/history/s1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		SessionID string `json:"sessionId"`
		Messages  []struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "s1", data.SessionID)
	require.Len(t, data.Messages, 2)
	assert.Equal(t, "user", data.Messages[0].Type)
	assert.Equal(t, "bot", data.Messages[1].Type)
}

func TestChatbotFeedback(t *testing.T) {
	router := newChatbotRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/chatbot/feedback", `{
		"sessionId": "s1",
		"messageId": "2",
		"rating": 5,
		"feedback": "very helpful"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Thank you for your feedback!", env.Message)
}
