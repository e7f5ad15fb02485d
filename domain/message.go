// Package domain contains core concepts of the discussion system.
// This file defines transcript Messages.
// Messages are immutable once appended.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reserved sender values. Any other sender is a participant Handle.
const (
	SenderUser    = "user"
	SenderSystem  = "system"
	SenderUnknown = "unknown agent"
)

// Message represents one transcript entry.
// Round 0 marks pre-round chatter such as the user utterance itself.
type Message struct {
	ID      uuid.UUID
	Sender  string
	Content string
	At      time.Time
	Round   int
	Cost    *float64
}

func (m Message) IsSystem() bool {
	return m.Sender == SenderSystem
}

func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}
