package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/state"
)

// ChatService forwards visitor messages to the backend assistant.
type ChatService struct {
	client *resty.Client
	store  state.Store
}

// NewChatService creates a ChatService. The store supplies the persistent
// chat session id.
func NewChatService(baseURL string, store state.Store, timeout time.Duration) *ChatService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &ChatService{client: client, store: store}
}

// SessionID returns the persistent chat session id, creating one on first
// use. It never changes for the lifetime of the local state.
func (s *ChatService) SessionID() string {
	return s.store.ChatSessionID()
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatReply struct {
	Answer string `json:"answer"`
}

// Send posts one message and returns the assistant's reply. Failures never
// surface as errors: the returned message is a synthesized bot turn carrying
// the failure description, so the transcript stays complete.
func (s *ChatService) Send(ctx context.Context, sessionID, message string) models.ChatMessage {
	var reply chatReply
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(chatRequest{SessionID: sessionID, Message: message}).
		SetResult(&reply).
		Post("/api/chat")

	if err != nil {
		return models.ChatMessage{
			Role: models.RoleBot,
			Text: fmt.Sprintf("The assistant is unreachable right now. Detail: %v", err),
		}
	}
	if resp.IsError() {
		detail := resp.String()
		if detail == "" {
			detail = "no body"
		}
		return models.ChatMessage{
			Role: models.RoleBot,
			Text: fmt.Sprintf("Backend error %d: %s", resp.StatusCode(), detail),
		}
	}
	if reply.Answer == "" {
		return models.ChatMessage{Role: models.RoleBot, Text: "(empty answer)"}
	}

	return models.ChatMessage{Role: models.RoleBot, Text: reply.Answer}
}
