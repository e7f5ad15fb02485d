// Package domain contains core concepts of the discussion system.
// This file defines Participant identities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Handle is a process-local participant identifier. It is never persisted;
// the durable counterpart is the desk id issued by the backend.
type Handle string

// DisplayMeta carries the presentation identity used to seed a desk record.
type DisplayMeta struct {
	Name    string `validate:"required,min=1,max=64"`
	Color   string `validate:"omitempty,hexcolor"`
	Avatar  string `validate:"omitempty"`
	ModelID string `validate:"required"`
}

// Participant is a runtime identity taking part in a meeting.
// DeskID stays nil until the resolver provisions or recovers the durable record.
type Participant struct {
	Handle Handle
	Meta   DisplayMeta
	DeskID *string
}

func (p Participant) Resolved() bool {
	return p.DeskID != nil && *p.DeskID != ""
}
