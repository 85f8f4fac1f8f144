package state

import (
	"sync"

	"github.com/binarakost/kostctl/internal/shared"
)

const (
	keyAdminToken    = "admin_token"
	keyChatSessionID = "chat_session_id"
)

// Store holds the admin session token and the chat session id.
//
// Token returns the empty string when no session is active. ChatSessionID is
// get-or-create: the first call generates an opaque identifier that every
// later call returns unchanged. None of the methods fail; a store that cannot
// persist simply doesn't.
type Store interface {
	Token() string
	SetToken(token string)
	Clear()
	ChatSessionID() string
}

// Memory is the in-process fallback [Store] used when no database is
// available. State lives for the lifetime of the process only.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[keyAdminToken]
}

func (m *Memory) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[keyAdminToken] = token
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, keyAdminToken)
}

func (m *Memory) ChatSessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id := m.values[keyChatSessionID]; id != "" {
		return id
	}
	id := shared.GenerateID()
	m.values[keyChatSessionID] = id
	return id
}
