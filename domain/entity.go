// This file defines the durable forms exchanged with the backend.
// The runtime never persists Handles; everything here is keyed by desk ids.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MeetingStatus string

const (
	StatusActive MeetingStatus = "active"
	StatusEnded  MeetingStatus = "ended"
)

// SenderKind distinguishes message origins in the flat durable history.
type SenderKind string

const (
	KindUser   SenderKind = "user"
	KindSystem SenderKind = "system"
	KindAgent  SenderKind = "agent"
)

// DeskRecord binds a display identity to an assigned model. It is the
// persistence unit behind an AI participant.
type DeskRecord struct {
	ID        string
	Name      string
	Color     string
	Avatar    string
	ModelID   string
	CreatedAt time.Time
}

type EntityParticipant struct {
	DeskID  string
	Name    string
	Color   string
	ModelID string
}

// StoredMessage is one entry of the durable history. SenderDeskID is empty
// for user and system entries.
type StoredMessage struct {
	ID           uuid.UUID
	SenderDeskID string
	Kind         SenderKind
	Content      string
	Round        int
	Cost         *float64
	At           time.Time
}

// BackendMeeting is the durable meeting record.
type BackendMeeting struct {
	ID           string
	Topic        string
	Participants []EntityParticipant
	Messages     []StoredMessage
	Status       MeetingStatus
	StartedAt    time.Time
	EndedAt      *time.Time
}

type MeetingSummary struct {
	ID           string
	Topic        string
	Status       MeetingStatus
	StartedAt    time.Time
	MessageCount int
}
