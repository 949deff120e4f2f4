package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dattran06/chatbot-backend/internal/db"
	"github.com/dattran06/chatbot-backend/internal/store/redisstore"
)

const RoleAssistant = "assistant"

// Store persists sessions through the shared lazy database handle.
// Append operations are silent no-ops when the session id matches no
// row: the caller never learns the difference, matching the
// update-matched-zero behavior the frontend was built against.
type Store struct {
	db    *db.Lazy
	cache *redisstore.Store
}

func NewStore(lazy *db.Lazy, cache *redisstore.Store) *Store {
	return &Store{db: lazy, cache: cache}
}

// Models lists everything the store migrates.
func Models() []any {
	return []any{&Session{}, &Message{}, &StoredFile{}}
}

func (s *Store) Create(ctx context.Context) (string, error) {
	gdb, err := s.db.Get()
	if err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	sid := uuid.NewString()
	if err := gdb.WithContext(ctx).Create(&Session{SessionID: sid}).Error; err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	s.cache.InvalidateSessionList(ctx)
	return sid, nil
}

// List returns every session, newest first, with history and files in
// insertion order. The rendered list is cached briefly when redis is
// configured; every write path invalidates it.
func (s *Store) List(ctx context.Context) ([]Session, error) {
	if b, ok := s.cache.GetSessionList(ctx); ok {
		var cached []Session
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
	}

	gdb, err := s.db.Get()
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	var sessions []Session
	if err := gdb.WithContext(ctx).
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Files", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("created_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	for i := range sessions {
		if sessions[i].History == nil {
			sessions[i].History = []Message{}
		}
	}

	if b, err := json.Marshal(sessions); err == nil {
		s.cache.SetSessionList(ctx, b)
	}
	return sessions, nil
}

// AppendTurn adds one chat exchange to a session's history: every
// user-supplied message followed by a single assistant record holding
// answer, all inside one transaction.
func (s *Store) AppendTurn(ctx context.Context, sessionID string, messages []Message, answer string) error {
	rows := make([]Message, 0, len(messages)+1)
	for _, m := range messages {
		rows = append(rows, Message{SessionID: sessionID, Role: m.Role, Content: m.Content})
	}
	rows = append(rows, Message{SessionID: sessionID, Role: RoleAssistant, Content: answer})

	return s.appendRows(ctx, sessionID, func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// AppendFiles adds uploaded file URLs to a session in input order.
func (s *Store) AppendFiles(ctx context.Context, sessionID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	rows := make([]StoredFile, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, StoredFile{SessionID: sessionID, URL: u})
	}

	return s.appendRows(ctx, sessionID, func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

func (s *Store) appendRows(ctx context.Context, sessionID string, insert func(tx *gorm.DB) error) error {
	gdb, err := s.db.Get()
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	err = gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&Session{}).Where("session_id = ?", sessionID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			// matched zero rows: succeed without writing
			return nil
		}
		return insert(tx)
	})
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	s.cache.InvalidateSessionList(ctx)
	return nil
}
