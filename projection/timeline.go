// Package projection builds local read models from observed events.
// Handles ordering only; it does not emit events or touch the UI.
package projection

import (
	"context"
	"sync"

	"roundtable/domain"
	"roundtable/domain/event"
)

// Timeline is an event-fed copy of the transcript, safe to read while a
// round is still appending.
type Timeline struct {
	mu       sync.RWMutex
	meeting  string
	messages []domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.MessageAppended:
		if t.meeting != "" && t.meeting != evt.Meeting {
			// A new meeting replaced the previous one; restart the view.
			t.messages = nil
		}
		t.meeting = evt.Meeting
		t.messages = append(t.messages, evt.Message)
	case event.MeetingEnded:
		t.meeting = ""
		t.messages = nil
	}
	return nil
}

// Messages returns a copy in append order.
func (t *Timeline) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}
