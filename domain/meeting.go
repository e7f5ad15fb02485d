package domain

import "time"

// Phase is the session state machine's position in the discussion cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRound1
	PhaseAwaitingRound2
	PhaseRound2
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRound1:
		return "round1"
	case PhaseAwaitingRound2:
		return "awaiting-round2"
	case PhaseRound2:
		return "round2"
	default:
		return "unknown"
	}
}

// Meeting is the runtime session. Its ID is backend-issued when persistence
// succeeded, or a locally-generated placeholder when it did not (Persisted
// is false in that degraded mode).
type Meeting struct {
	ID           string
	Topic        string
	Participants []Participant
	Transcript   []Message
	StartedAt    time.Time
	Phase        Phase
	Persisted    bool
}

func (m *Meeting) Append(msg Message) {
	m.Transcript = append(m.Transcript, msg)
}

func (m *Meeting) ParticipantByHandle(h Handle) (Participant, bool) {
	for _, p := range m.Participants {
		if p.Handle == h {
			return p, true
		}
	}
	return Participant{}, false
}

// History returns the transcript without system dividers, the form used to
// build round-1 prompts.
func (m *Meeting) History() []Message {
	var out []Message
	for _, msg := range m.Transcript {
		if msg.IsSystem() {
			continue
		}
		out = append(out, msg)
	}
	return out
}
