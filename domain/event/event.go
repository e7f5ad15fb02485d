package event

import (
	"time"

	"roundtable/domain"
)

// DomainEvent is anything the session reducer applies and fans out to sinks.
type DomainEvent interface {
	MeetingID() string
}

// PhaseChanged marks one transition of the discussion cycle.
type PhaseChanged struct {
	Meeting string
	From    domain.Phase
	To      domain.Phase
	At      time.Time
}

func (e PhaseChanged) MeetingID() string { return e.Meeting }

// MessageAppended carries a new transcript entry, emitted as soon as the
// entry is available so observers see the round unfold incrementally.
type MessageAppended struct {
	Meeting string
	Message domain.Message
}

func (e MessageAppended) MeetingID() string { return e.Meeting }

// RoundOpened announces a round before its first provider call.
type RoundOpened struct {
	Meeting      string
	Round        int
	Participants int
}

func (e RoundOpened) MeetingID() string { return e.Meeting }

// CostObserved reports accounting metadata of one provider call.
type CostObserved struct {
	Meeting string
	Amount  float64
	Latency time.Duration
}

func (e CostObserved) MeetingID() string { return e.Meeting }

// PersistenceDegraded signals that the meeting continues in-memory only.
type PersistenceDegraded struct {
	Meeting string
	Reason  string
}

func (e PersistenceDegraded) MeetingID() string { return e.Meeting }

type MeetingEnded struct {
	Meeting string
	At      time.Time
}

func (e MeetingEnded) MeetingID() string { return e.Meeting }
