//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"roundtable/domain"
	"roundtable/domain/event"
)

// AskRequest carries everything the backend needs for one provider call.
// History holds the prior transcript without system entries (round 1);
// PeerReplies holds the other participants' round-1 responses (round 2).
type AskRequest struct {
	MeetingID   string
	DeskID      string
	ModelID     string
	Utterance   string
	Round       int
	History     []domain.Message
	PeerReplies []domain.RoundReply
}

type AskReply struct {
	Text    string
	Cost    float64
	Latency time.Duration
}

// IProvider is the opaque "ask a model" collaborator. Implementations talk
// to whatever AI endpoint backs a desk; this module only ships a scripted one.
type IProvider interface {
	Ask(ctx context.Context, req AskRequest) (AskReply, error)
}

// IBackend is the durable collaborator behind the orchestration core.
// A failed AskParticipant call may still carry a partial cost in its reply.
type IBackend interface {
	CreateDeskRecord(ctx context.Context, meta domain.DisplayMeta) (string, error)
	StartMeeting(ctx context.Context, topic string, deskIDs []string) (domain.BackendMeeting, error)
	AskParticipant(ctx context.Context, req AskRequest) (AskReply, error)
	EndMeeting(ctx context.Context, meetingID string) error
	ReactivateMeeting(ctx context.Context, meetingID string) (domain.BackendMeeting, error)
	GetMeeting(ctx context.Context, meetingID string) (domain.BackendMeeting, error)
	ListMeetings(ctx context.Context, status *domain.MeetingStatus) ([]domain.MeetingSummary, error)
	DeleteMeeting(ctx context.Context, meetingID string) error
	DeleteAllMeetings(ctx context.Context) error
}

// IResolver maps local handles to durable desk ids, provisioning on demand.
type IResolver interface {
	Register(p domain.Participant)
	Resolve(ctx context.Context, h domain.Handle) (string, error)
	HandleFor(deskID string) (domain.Handle, bool)
	HandleForName(name string) (domain.Handle, bool)
	Memoize(h domain.Handle, deskID string)
	MetaFor(h domain.Handle) (domain.DisplayMeta, bool)
}

// ICostRecorder folds per-call accounting into running totals. It must never
// block or fail the round.
type ICostRecorder interface {
	Record(amount float64, latency time.Duration)
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
