package session

import (
	"encoding/json"
	"time"
)

// Session keeps the shape the frontend expects: an opaque id, a creation
// timestamp, the ordered chat history, and the uploaded file URLs. The
// files key only appears once a file has been uploaded for the session.
type Session struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"session_id"`
	CreatedAt time.Time `json:"createdAt"`

	History []Message    `gorm:"foreignKey:SessionID;references:SessionID" json:"history"`
	Files   []StoredFile `gorm:"foreignKey:SessionID;references:SessionID" json:"files,omitempty"`
}

func (Session) TableName() string { return "sessions" }

type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string    `gorm:"type:varchar(36);index;not null" json:"-"`
	// role is free-form by contract, not an enum
	Role      string    `gorm:"type:text;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"-"`
}

func (Message) TableName() string { return "session_messages" }

type StoredFile struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string    `gorm:"type:varchar(36);index;not null" json:"-"`
	URL       string    `gorm:"type:varchar(512);not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (StoredFile) TableName() string { return "session_files" }

// A session's files render as a plain list of URL strings.
func (f StoredFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.URL)
}

func (f *StoredFile) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &f.URL)
}
