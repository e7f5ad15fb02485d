package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"roundtable/domain"
	"roundtable/domain/event"
	apperrors "roundtable/errors"
)

// StartSession resolves every participant, opens the durable meeting record
// and installs the runtime meeting. A resolution failure excludes that
// participant only; a persistence failure degrades to an unpersisted local
// meeting instead of failing the session.
func (s *Session) StartSession(ctx context.Context, topic string, participants []domain.Participant) error {
	s.mu.Lock()
	if s.meeting != nil && s.meeting.Phase != domain.PhaseIdle {
		s.mu.Unlock()
		return apperrors.ErrSessionBusy
	}
	s.mu.Unlock()

	var kept []domain.Participant
	var deskIDs []string
	for _, p := range participants {
		s.resolver.Register(p)
		deskID, err := s.resolver.Resolve(ctx, p.Handle)
		if err != nil {
			s.log.Warn("Participant left out of the meeting", "handle", p.Handle, "error", err)
			continue
		}
		p.DeskID = &deskID
		kept = append(kept, p)
		deskIDs = append(deskIDs, deskID)
	}
	if len(kept) == 0 {
		return apperrors.ErrNoParticipants
	}

	meeting := &domain.Meeting{
		Topic:        topic,
		Participants: kept,
		StartedAt:    time.Now().UTC(),
		Phase:        domain.PhaseIdle,
	}

	entity, err := s.backend.StartMeeting(ctx, topic, deskIDs)
	var degradedReason string
	if err != nil {
		meeting.ID = "local-" + uuid.NewString()
		meeting.Persisted = false
		degradedReason = err.Error()
		s.log.Warn("Meeting will not be persisted", "meeting", meeting.ID, "error", err)
	} else {
		meeting.ID = entity.ID
		meeting.Persisted = true
		meeting.StartedAt = entity.StartedAt
	}

	s.mu.Lock()
	s.meeting = meeting
	s.pending = nil
	if degradedReason != "" {
		s.applyLocked(ctx, event.PersistenceDegraded{Meeting: meeting.ID, Reason: degradedReason})
	}
	s.mu.Unlock()

	s.log.Info("Meeting started",
		"meeting", meeting.ID,
		"topic", topic,
		"participants", len(kept),
		"persisted", meeting.Persisted,
	)
	return nil
}

// ResumeSession reactivates a persisted meeting and rebuilds the runtime
// state from its entity. The phase is always idle afterwards; an in-flight
// round is never restored.
func (s *Session) ResumeSession(ctx context.Context, meetingID string) error {
	s.mu.Lock()
	if s.meeting != nil && s.meeting.Phase != domain.PhaseIdle {
		s.mu.Unlock()
		return apperrors.ErrSessionBusy
	}
	s.mu.Unlock()

	entity, err := s.backend.ReactivateMeeting(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("resume meeting %s: %w", meetingID, err)
	}

	meeting := s.rebuildMeeting(entity)

	s.mu.Lock()
	s.meeting = meeting
	s.pending = nil
	s.mu.Unlock()

	s.log.Info("Meeting resumed",
		"meeting", meeting.ID,
		"participants", len(meeting.Participants),
		"messages", len(meeting.Transcript),
	)
	return nil
}

// rebuildMeeting converts the durable entity back into runtime form.
// Desk ids are mapped through the memoized resolver; a missing mapping falls
// back to a unique display-name match, and anything still unresolved becomes
// a best-effort placeholder rather than aborting the resume.
func (s *Session) rebuildMeeting(entity domain.BackendMeeting) *domain.Meeting {
	participants := lo.Map(entity.Participants, func(ep domain.EntityParticipant, _ int) domain.Participant {
		return s.adoptParticipant(ep)
	})

	transcript := lo.Map(entity.Messages, func(sm domain.StoredMessage, _ int) domain.Message {
		return domain.Message{
			ID:      sm.ID,
			Sender:  s.senderFor(sm),
			Content: sm.Content,
			At:      sm.At,
			Round:   sm.Round,
			Cost:    sm.Cost,
		}
	})

	return &domain.Meeting{
		ID:           entity.ID,
		Topic:        entity.Topic,
		Participants: participants,
		Transcript:   transcript,
		StartedAt:    entity.StartedAt,
		Phase:        domain.PhaseIdle,
		Persisted:    true,
	}
}

func (s *Session) adoptParticipant(ep domain.EntityParticipant) domain.Participant {
	deskID := ep.DeskID

	if h, ok := s.resolver.HandleFor(ep.DeskID); ok {
		meta, _ := s.resolver.MetaFor(h)
		return domain.Participant{Handle: h, Meta: meta, DeskID: &deskID}
	}

	if h, ok := s.resolver.HandleForName(ep.Name); ok {
		// Name matching can rejoin a renamed desk to the wrong roster
		// entry; the adoption is logged so the merge is visible.
		s.log.Warn("Desk adopted by display name", "desk_id", ep.DeskID, "name", ep.Name, "handle", h)
		s.resolver.Memoize(h, ep.DeskID)
		meta, _ := s.resolver.MetaFor(h)
		return domain.Participant{Handle: h, Meta: meta, DeskID: &deskID}
	}

	// Unknown desk: fabricate a local identity so the meeting stays usable.
	handle := domain.Handle("desk-" + shortID(ep.DeskID))
	name := ep.Name
	if name == "" {
		name = domain.SenderUnknown
	}
	p := domain.Participant{
		Handle: handle,
		Meta:   domain.DisplayMeta{Name: name, Color: ep.Color, ModelID: ep.ModelID},
		DeskID: &deskID,
	}
	s.resolver.Register(p)
	s.log.Warn("Unknown desk rebuilt as placeholder", "desk_id", ep.DeskID, "handle", handle)
	return p
}

func (s *Session) senderFor(sm domain.StoredMessage) string {
	switch sm.Kind {
	case domain.KindUser:
		return domain.SenderUser
	case domain.KindSystem:
		return domain.SenderSystem
	default:
		if h, ok := s.resolver.HandleFor(sm.SenderDeskID); ok {
			return string(h)
		}
		return domain.SenderUnknown
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
