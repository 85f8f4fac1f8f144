package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/binarakost/kostctl/internal/shared"
)

const schema = `
	CREATE TABLE IF NOT EXISTS credentials (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

// SQLite is the persistent [Store] backed by a single-table SQLite database.
type SQLite struct {
	db     *sql.DB
	logger *log.Logger
}

var _ Store = (*SQLite)(nil)

// Open opens (creating if necessary) the state database at path and ensures
// the schema exists.
func Open(path string, logger *log.Logger) (*SQLite, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state schema: %w", err)
	}

	return &SQLite{db: db, logger: logger}, nil
}

// OpenOrMemory opens the state database at path, degrading to an in-memory
// store when the database is unusable.
func OpenOrMemory(path string, logger *log.Logger) Store {
	store, err := Open(path, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("state database unavailable, session will not persist", "path", path, "error", err)
		}
		return NewMemory()
	}
	return store
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) get(key string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return ""
	}
	if err != nil {
		s.logger.Warn("failed to read state", "key", key, "error", err)
		return ""
	}
	return value
}

func (s *SQLite) set(key, value string) {
	query := `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to write state", "key", key, "error", err)
	}
}

func (s *SQLite) delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM credentials WHERE key = ?`, key); err != nil {
		s.logger.Warn("failed to delete state", "key", key, "error", err)
	}
}

// Token returns the stored admin token, or "" when logged out.
func (s *SQLite) Token() string {
	return s.get(keyAdminToken)
}

// SetToken stores the admin token. The token shape is not validated.
func (s *SQLite) SetToken(token string) {
	s.set(keyAdminToken, token)
}

// Clear removes the admin token, ending the session.
func (s *SQLite) Clear() {
	s.delete(keyAdminToken)
}

// ChatSessionID returns the persisted chat session id, generating and
// persisting a fresh one on first use.
func (s *SQLite) ChatSessionID() string {
	if id := s.get(keyChatSessionID); id != "" {
		return id
	}
	id := shared.GenerateID()
	s.set(keyChatSessionID, id)
	return id
}
