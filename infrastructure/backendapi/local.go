// Package backendapi implements the backend collaborator contract over the
// local BadgerDB repositories. The orchestration core only ever sees the
// contract.IBackend interface, so a remote implementation can replace this
// one without touching the runtime.
package backendapi

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"roundtable/contract"
	"roundtable/domain"
	apperrors "roundtable/errors"
	"roundtable/infrastructure/search"
	"roundtable/infrastructure/storage"
)

type LocalBackend struct {
	mu       sync.Mutex
	log      *slog.Logger
	desks    storage.DeskRepository
	meetings storage.MeetingRepository
	messages storage.MessageRepository
	index    *search.TranscriptIndex
	provider contract.IProvider

	// lastUtterance deduplicates the user message across the k sequential
	// ask calls that all carry the same utterance.
	lastUtterance map[string]string
}

func NewLocalBackend(
	log *slog.Logger,
	desks storage.DeskRepository,
	meetings storage.MeetingRepository,
	messages storage.MessageRepository,
	index *search.TranscriptIndex,
	provider contract.IProvider,
) *LocalBackend {
	return &LocalBackend{
		log:           log,
		desks:         desks,
		meetings:      meetings,
		messages:      messages,
		index:         index,
		provider:      provider,
		lastUtterance: make(map[string]string),
	}
}

func (b *LocalBackend) CreateDeskRecord(_ context.Context, meta domain.DisplayMeta) (string, error) {
	rec := domain.DeskRecord{
		ID:        uuid.NewString(),
		Name:      meta.Name,
		Color:     meta.Color,
		Avatar:    meta.Avatar,
		ModelID:   meta.ModelID,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.desks.StoreDesk(rec); err != nil {
		return "", fmt.Errorf("store desk record: %w", err)
	}
	return rec.ID, nil
}

// StartMeeting opens a durable record for the given desks. A missing desk is
// skipped with a warning rather than failing the whole meeting.
func (b *LocalBackend) StartMeeting(_ context.Context, topic string, deskIDs []string) (domain.BackendMeeting, error) {
	var participants []domain.EntityParticipant
	for _, id := range deskIDs {
		desk, err := b.desks.GetDesk(id)
		if err != nil {
			b.log.Warn("Desk missing at meeting start", "desk_id", id, "error", err)
			continue
		}
		participants = append(participants, domain.EntityParticipant{
			DeskID:  desk.ID,
			Name:    desk.Name,
			Color:   desk.Color,
			ModelID: desk.ModelID,
		})
	}
	if len(participants) == 0 {
		return domain.BackendMeeting{}, apperrors.ErrNoParticipants
	}

	meeting := domain.BackendMeeting{
		ID:           uuid.NewString(),
		Topic:        topic,
		Participants: participants,
		Status:       domain.StatusActive,
		StartedAt:    time.Now().UTC(),
	}
	if err := b.meetings.StoreMeeting(meeting); err != nil {
		return domain.BackendMeeting{}, fmt.Errorf("store meeting: %w", err)
	}
	return meeting, nil
}

// AskParticipant forwards the call to the provider and persists both sides
// of the exchange. The reply is returned even when persistence hiccups: the
// conversation must not stall on accounting.
func (b *LocalBackend) AskParticipant(ctx context.Context, req contract.AskRequest) (contract.AskReply, error) {
	meeting, err := b.meetings.GetMeeting(req.MeetingID)
	if err != nil {
		return contract.AskReply{}, err
	}
	if meeting.Status == domain.StatusEnded {
		return contract.AskReply{}, apperrors.ErrMeetingEnded
	}

	reply, err := b.provider.Ask(ctx, req)
	if err != nil {
		return reply, err
	}

	b.persistExchange(meeting, req, reply)
	return reply, nil
}

func (b *LocalBackend) persistExchange(meeting domain.BackendMeeting, req contract.AskRequest, reply contract.AskReply) {
	now := time.Now().UTC()

	b.mu.Lock()
	storeUtterance := b.lastUtterance[req.MeetingID] != req.Utterance
	if storeUtterance {
		b.lastUtterance[req.MeetingID] = req.Utterance
	}
	b.mu.Unlock()

	if storeUtterance {
		userMsg := domain.StoredMessage{
			ID:      uuid.New(),
			Kind:    domain.KindUser,
			Content: req.Utterance,
			Round:   0,
			At:      now,
		}
		b.store(meeting, userMsg)
	}

	cost := reply.Cost
	agentMsg := domain.StoredMessage{
		ID:           uuid.New(),
		SenderDeskID: req.DeskID,
		Kind:         domain.KindAgent,
		Content:      reply.Text,
		Round:        req.Round,
		Cost:         &cost,
		At:           now.Add(time.Nanosecond),
	}
	b.store(meeting, agentMsg)
}

func (b *LocalBackend) store(meeting domain.BackendMeeting, m domain.StoredMessage) {
	if err := b.messages.StoreMessage(meeting.ID, m); err != nil {
		b.log.Warn("Message not persisted", "meeting", meeting.ID, "error", err)
		return
	}
	if b.index != nil {
		if err := b.index.Index(meeting.ID, meeting.Topic, m); err != nil {
			b.log.Warn("Message not indexed", "meeting", meeting.ID, "error", err)
		}
	}
}

func (b *LocalBackend) EndMeeting(_ context.Context, meetingID string) error {
	now := time.Now().UTC()
	return b.meetings.SetStatus(meetingID, domain.StatusEnded, &now)
}

func (b *LocalBackend) ReactivateMeeting(ctx context.Context, meetingID string) (domain.BackendMeeting, error) {
	if err := b.meetings.SetStatus(meetingID, domain.StatusActive, nil); err != nil {
		return domain.BackendMeeting{}, err
	}
	return b.GetMeeting(ctx, meetingID)
}

func (b *LocalBackend) GetMeeting(_ context.Context, meetingID string) (domain.BackendMeeting, error) {
	meeting, err := b.meetings.GetMeeting(meetingID)
	if err != nil {
		return domain.BackendMeeting{}, err
	}
	messages, err := b.messages.GetMessages(meetingID)
	if err != nil {
		return domain.BackendMeeting{}, err
	}
	meeting.Messages = messages
	return meeting, nil
}

func (b *LocalBackend) ListMeetings(_ context.Context, status *domain.MeetingStatus) ([]domain.MeetingSummary, error) {
	summaries, err := b.meetings.ListMeetings(status)
	if err != nil {
		return nil, err
	}
	return lo.Map(summaries, func(s domain.MeetingSummary, _ int) domain.MeetingSummary {
		count, err := b.messages.Count(s.ID)
		if err != nil {
			b.log.Warn("Message count unavailable", "meeting", s.ID, "error", err)
			return s
		}
		s.MessageCount = count
		return s
	}), nil
}

func (b *LocalBackend) DeleteMeeting(_ context.Context, meetingID string) error {
	if err := b.messages.DeleteFor(meetingID); err != nil {
		return err
	}
	return b.meetings.DeleteMeeting(meetingID)
}

func (b *LocalBackend) DeleteAllMeetings(_ context.Context) error {
	if err := b.messages.DeleteAll(); err != nil {
		return err
	}
	return b.meetings.DeleteAll()
}
