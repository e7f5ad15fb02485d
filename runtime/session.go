package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"roundtable/contract"
	"roundtable/domain"
	"roundtable/domain/event"
	apperrors "roundtable/errors"
	"roundtable/moderation"
)

// Session owns the discussion phase and the active meeting. All mutations
// flow through one reducer (applyLocked) which also fans events out to the
// registered sinks, so the cyclic phase invariant stays checkable in one
// place. One utterance's full two-round cycle completes before the next is
// accepted.
type Session struct {
	mu          sync.Mutex
	log         *slog.Logger
	backend     contract.IBackend
	resolver    contract.IResolver
	costs       contract.ICostRecorder
	executor    *RoundExecutor
	sinks       []contract.EventSink
	sinkTimeout time.Duration
	meeting     *domain.Meeting
	pending     *domain.PendingRoundContext
}

func NewSession(
	log *slog.Logger,
	backend contract.IBackend,
	resolver contract.IResolver,
	costs contract.ICostRecorder,
	moderator *moderation.Moderator,
	pacing, askTimeout, sinkTimeout time.Duration,
) *Session {
	s := &Session{
		log:         log,
		backend:     backend,
		resolver:    resolver,
		costs:       costs,
		sinkTimeout: sinkTimeout,
	}
	s.executor = NewRoundExecutor(log, backend, resolver, costs, moderator, pacing, askTimeout, s.apply)
	return s
}

func (s *Session) AddSinks(sinks ...contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sinks...)
}

// Phase reports idle when no meeting is active.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil {
		return domain.PhaseIdle
	}
	return s.meeting.Phase
}

// Transcript returns a copy of the active meeting's transcript.
func (s *Session) Transcript() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil {
		return nil
	}
	out := make([]domain.Message, len(s.meeting.Transcript))
	copy(out, s.meeting.Transcript)
	return out
}

// Snapshot returns a shallow copy of the active meeting for display.
func (s *Session) Snapshot() (domain.Meeting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil {
		return domain.Meeting{}, false
	}
	return *s.meeting, true
}

// SubmitUtterance runs round 1 for every AI participant. It blocks until the
// round completes and parks the session in awaiting-round2 when more than one
// usable reply came back.
func (s *Session) SubmitUtterance(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.meeting == nil {
		s.mu.Unlock()
		return apperrors.ErrNoActiveMeeting
	}
	if s.meeting.Phase != domain.PhaseIdle {
		s.mu.Unlock()
		return apperrors.ErrSessionBusy
	}

	meetingID := s.meeting.ID
	// Snapshot before the user message lands: the utterance travels in its
	// own request field, not duplicated inside the history.
	history := s.meeting.History()
	s.transitionLocked(ctx, domain.PhaseRound1)
	s.applyLocked(ctx, event.MessageAppended{
		Meeting: meetingID,
		Message: domain.Message{
			ID:      uuid.New(),
			Sender:  domain.SenderUser,
			Content: text,
			At:      time.Now().UTC(),
			Round:   0,
		},
	})

	in := RoundInput{
		MeetingID:    meetingID,
		Utterance:    text,
		Participants: append([]domain.Participant(nil), s.meeting.Participants...),
		Round:        1,
		History:      history,
	}
	s.mu.Unlock()

	replies := s.executor.Run(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil || s.meeting.ID != meetingID {
		// The meeting ended while the round was in flight.
		return nil
	}

	if len(replies) > 1 {
		s.pending = &domain.PendingRoundContext{
			Utterance: text,
			Eligible:  eligibleForDebate(in.Participants, replies),
			Replies:   replies,
		}
		s.transitionLocked(ctx, domain.PhaseAwaitingRound2)
	} else {
		s.transitionLocked(ctx, domain.PhaseIdle)
	}
	return nil
}

// ConfirmRound2 runs the debate round using the held context, which is
// discarded the moment round2 is entered.
func (s *Session) ConfirmRound2(ctx context.Context) error {
	s.mu.Lock()
	if s.meeting == nil {
		s.mu.Unlock()
		return apperrors.ErrNoActiveMeeting
	}
	if s.meeting.Phase != domain.PhaseAwaitingRound2 || s.pending == nil {
		s.mu.Unlock()
		return apperrors.ErrNoPendingRound
	}

	meetingID := s.meeting.ID
	pending := *s.pending
	s.pending = nil
	s.transitionLocked(ctx, domain.PhaseRound2)

	in := RoundInput{
		MeetingID:    meetingID,
		Utterance:    pending.Utterance,
		Participants: pending.Eligible,
		Round:        2,
		PriorReplies: pending.Replies,
	}
	s.mu.Unlock()

	s.executor.Run(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil || s.meeting.ID != meetingID {
		return nil
	}
	s.transitionLocked(ctx, domain.PhaseIdle)
	return nil
}

// DeclineRound2 drops the pending context and returns to idle.
func (s *Session) DeclineRound2(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meeting == nil {
		return apperrors.ErrNoActiveMeeting
	}
	if s.meeting.Phase != domain.PhaseAwaitingRound2 {
		return apperrors.ErrNoPendingRound
	}
	s.pending = nil
	s.transitionLocked(ctx, domain.PhaseIdle)
	return nil
}

// EndSession clears the in-memory meeting and, when it was persisted, closes
// the durable record. A backend failure here is logged and swallowed: the
// local teardown already happened.
func (s *Session) EndSession(ctx context.Context) error {
	s.mu.Lock()
	if s.meeting == nil {
		s.mu.Unlock()
		return apperrors.ErrNoActiveMeeting
	}
	meeting := s.meeting
	s.applyLocked(ctx, event.MeetingEnded{Meeting: meeting.ID, At: time.Now().UTC()})
	s.meeting = nil
	s.pending = nil
	s.mu.Unlock()

	if meeting.Persisted {
		if err := s.backend.EndMeeting(ctx, meeting.ID); err != nil {
			s.log.Warn("Backend end call failed, meeting closed locally", "meeting", meeting.ID, "error", err)
		}
	}
	return nil
}

// apply is the executor's emission hook.
func (s *Session) apply(ctx context.Context, e event.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(ctx, e)
}

// applyLocked is the single mutation point. Events for a meeting that is no
// longer active are dropped: a call resolving after the end request has no
// transcript left to land in.
func (s *Session) applyLocked(ctx context.Context, e event.DomainEvent) {
	if s.meeting == nil || s.meeting.ID != e.MeetingID() {
		if _, ok := e.(event.MeetingEnded); !ok {
			s.log.Debug("Dropping event for inactive meeting", "meeting", e.MeetingID())
			return
		}
	}

	switch evt := e.(type) {
	case event.MessageAppended:
		s.meeting.Append(evt.Message)
	case event.PhaseChanged:
		s.meeting.Phase = evt.To
	}

	s.fanoutLocked(ctx, e)
}

func (s *Session) transitionLocked(ctx context.Context, to domain.Phase) {
	from := s.meeting.Phase
	if from == to {
		return
	}
	s.applyLocked(ctx, event.PhaseChanged{
		Meeting: s.meeting.ID,
		From:    from,
		To:      to,
		At:      time.Now().UTC(),
	})
	s.log.Debug("Phase transition", "from", from.String(), "to", to.String())
}

// fanoutLocked delivers the event to every sink under the sink timeout.
// Sink failures are logged, never propagated.
func (s *Session) fanoutLocked(ctx context.Context, e event.DomainEvent) {
	for _, sink := range s.sinks {
		sinkCtx := ctx
		var cancel context.CancelFunc
		if s.sinkTimeout > 0 {
			sinkCtx, cancel = context.WithTimeout(ctx, s.sinkTimeout)
		}
		if err := sink.Consume(sinkCtx, e); err != nil {
			s.log.Warn("Sink rejected event", "error", err)
		}
		if cancel != nil {
			cancel()
		}
	}
}

// eligibleForDebate keeps, in round order, the participants that produced a
// usable round-1 reply.
func eligibleForDebate(participants []domain.Participant, replies []domain.RoundReply) []domain.Participant {
	replied := lo.SliceToMap(replies, func(r domain.RoundReply) (domain.Handle, struct{}) {
		return r.Handle, struct{}{}
	})
	return lo.Filter(participants, func(p domain.Participant, _ int) bool {
		_, ok := replied[p.Handle]
		return ok
	})
}
