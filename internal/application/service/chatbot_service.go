package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/meditrack/pharmacy-pos-api/internal/domain/entity"
	"github.com/meditrack/pharmacy-pos-api/pkg/apperror"
)

// Chat intents the assistant can classify a message into
const (
	IntentGreeting          = "greeting"
	IntentMedicineInfo      = "medicine_info"
	IntentAvailabilityCheck = "availability_check"
	IntentPriceInquiry      = "price_inquiry"
	IntentPrescriptionHelp  = "prescription_help"
	IntentUnknown           = "unknown"
)

type chatIntent struct {
	name      string
	patterns  []string
	responses []string
}

// chatIntents is checked in order; the first pattern contained in the
// message wins
var chatIntents = []chatIntent{
	{
		name:     IntentGreeting,
		patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		responses: []string{
			"Hello! I'm your pharmacy assistant. How can I help you today?",
			"Hi there! What can I assist you with?",
			"Good to see you! How may I help you with your medication needs?",
		},
	},
	{
		name:     IntentMedicineInfo,
		patterns: []string{"what is", "tell me about", "side effects", "dosage", "information about"},
		responses: []string{
			"I can help you with medicine information. What specific medicine are you asking about?",
			"Please specify the medicine name and I'll provide detailed information.",
			"I have comprehensive information about medicines. Which one interests you?",
		},
	},
	{
		name:     IntentAvailabilityCheck,
		patterns: []string{"do you have", "is available", "in stock", "availability"},
		responses: []string{
			"Let me check our inventory for you.",
			"I'll look up the availability right away.",
			"Checking our current stock levels...",
		},
	},
	{
		name:     IntentPriceInquiry,
		patterns: []string{"price", "cost", "how much", "rate"},
		responses: []string{
			"I can help you with pricing information.",
			"Let me get the current price for you.",
			"I'll check the latest pricing details.",
		},
	},
	{
		name:     IntentPrescriptionHelp,
		patterns: []string{"prescription", "doctor prescribed", "medication list"},
		responses: []string{
			"I can help you understand your prescription.",
			"Please share your prescription details and I'll assist you.",
			"I'm here to help with prescription-related queries.",
		},
	},
}

const unknownIntentResponse = "I'm sorry, I didn't understand that. Can you please rephrase your question or ask about medicine information, availability, prices, or prescriptions?"

var (
	medicineInfoPattern = regexp.MustCompile(`(?i)(?:about|for|of)\s+([a-zA-Z]+)`)
	availabilityPattern = regexp.MustCompile(`(?i)(?:have|available)\s+([a-zA-Z]+)`)
	pricePattern        = regexp.MustCompile(`(?i)(?:price|cost|much)\s+(?:of\s+)?([a-zA-Z]+)`)
)

// ChatReply is the assistant's answer to one message
type ChatReply struct {
	Response    string    `json:"response"`
	Intent      string    `json:"intent"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"sessionId,omitempty"`
}

// ChatMessage is one entry of a session's conversation history
type ChatMessage struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatFeedback is a user rating of an assistant reply
type ChatFeedback struct {
	SessionID string    `json:"sessionId"`
	MessageID string    `json:"messageId"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatbotService answers counter questions by matching simple intent
// patterns. Medicine questions are answered from the live catalog, so
// stock and price lines always match what billing would charge.
type ChatbotService struct {
	catalog *CatalogService

	mu       sync.Mutex
	history  map[string][]ChatMessage
	feedback []ChatFeedback

	pick func(n int) int
	now  func() time.Time
}

// NewChatbotService creates an assistant answering from the given catalog
func NewChatbotService(catalog *CatalogService) *ChatbotService {
	return &ChatbotService{
		catalog: catalog,
		history: make(map[string][]ChatMessage),
		pick:    rand.Intn,
		now:     time.Now,
	}
}

// classifyIntent returns the first intent with a pattern contained in the
// message, or unknown
func classifyIntent(message string) string {
	lowered := strings.ToLower(message)
	for _, intent := range chatIntents {
		for _, pattern := range intent.patterns {
			if strings.Contains(lowered, pattern) {
				return intent.name
			}
		}
	}
	return IntentUnknown
}

// Reply classifies the message, generates a response and, when a session id
// is supplied, records both sides into that session's history
func (s *ChatbotService) Reply(message, sessionID string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperror.NewValidationError("message is required")
	}

	intent := classifyIntent(message)
	response := unknownIntentResponse
	suggestions := []string{}

	for _, candidate := range chatIntents {
		if candidate.name == intent {
			response = candidate.responses[s.pick(len(candidate.responses))]
			break
		}
	}

	switch intent {
	case IntentMedicineInfo:
		if med := s.lookupMedicine(medicineInfoPattern, message); med != nil {
			response = fmt.Sprintf(
				"Here's information about %s (%s, %s %s): %s. Side effects: %s. Please consult with a pharmacist for detailed dosage instructions.",
				med.Name, med.Brand, med.Strength, med.Form, med.Category, med.SideEffects)
			suggestions = []string{"Show side effects", "Check availability", "Alternative medicines"}
		}
	case IntentAvailabilityCheck:
		if med := s.lookupMedicine(availabilityPattern, message); med != nil {
			if med.Stock > 0 {
				response = fmt.Sprintf("Let me check... Yes, %s is currently in stock. We have %d units available.", med.Name, med.Stock)
			} else {
				response = fmt.Sprintf("I'm sorry, %s is currently out of stock.", med.Name)
			}
			suggestions = []string{"Check price", "Add to cart", "Alternative options"}
		}
	case IntentPriceInquiry:
		if med := s.lookupMedicine(pricePattern, message); med != nil {
			response = fmt.Sprintf("The current price for %s is $%s per %s. Would you like to know about any discounts available?",
				med.Name, med.Price.StringFixed(2), strings.ToLower(med.Form))
			suggestions = []string{"Apply senior discount", "Check insurance coverage", "Generic alternatives"}
		}
	}

	reply := &ChatReply{
		Response:    response,
		Intent:      intent,
		Suggestions: suggestions,
		Timestamp:   s.now(),
		SessionID:   sessionID,
	}

	if sessionID != "" {
		s.record(sessionID, message, response, reply.Timestamp)
	}
	return reply, nil
}

// lookupMedicine extracts a candidate name from the message and searches
// the catalog for it
func (s *ChatbotService) lookupMedicine(pattern *regexp.Regexp, message string) *entity.Medicine {
	match := pattern.FindStringSubmatch(message)
	if match == nil {
		return nil
	}
	found := s.catalog.List(&CatalogFilter{Search: match[1]})
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

func (s *ChatbotService) record(sessionID, userMessage, botResponse string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.history[sessionID]
	entries = append(entries,
		ChatMessage{ID: len(entries) + 1, Type: "user", Message: userMessage, Timestamp: at},
		ChatMessage{ID: len(entries) + 2, Type: "bot", Message: botResponse, Timestamp: at},
	)
	s.history[sessionID] = entries
}

// History returns the recorded conversation for a session, oldest first
func (s *ChatbotService) History(sessionID string) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ChatMessage, len(s.history[sessionID]))
	copy(out, s.history[sessionID])
	return out
}

// RecordFeedback stores a user rating of an assistant reply
func (s *ChatbotService) RecordFeedback(fb *ChatFeedback) *ChatFeedback {
	fb.Timestamp = s.now()

	s.mu.Lock()
	s.feedback = append(s.feedback, *fb)
	s.mu.Unlock()

	return fb
}

// Suggestions returns starter questions for an empty conversation
func (s *ChatbotService) Suggestions() []string {
	return []string{
		"What medicines do you have for headache?",
		"Is Paracetamol available?",
		"What's the price of Crocin?",
		"Tell me about Amoxicillin side effects",
		"Do you have any discounts for seniors?",
		"Can you help me understand my prescription?",
	}
}
