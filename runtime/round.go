package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"roundtable/classify"
	"roundtable/contract"
	"roundtable/domain"
	"roundtable/domain/event"
	"roundtable/moderation"
)

// RoundInput is the frozen plan of one round. Participants order is fixed
// before the first call; the transcript follows it exactly.
type RoundInput struct {
	MeetingID    string
	Utterance    string
	Participants []domain.Participant
	Round        int
	History      []domain.Message
	PriorReplies []domain.RoundReply
}

// RoundExecutor issues one provider call per participant, strictly
// sequentially, surfacing results through emitted events as they arrive.
type RoundExecutor struct {
	log        *slog.Logger
	backend    contract.IBackend
	resolver   contract.IResolver
	costs      contract.ICostRecorder
	moderator  *moderation.Moderator
	pacing     time.Duration
	askTimeout time.Duration
	emit       func(ctx context.Context, e event.DomainEvent)
}

func NewRoundExecutor(
	log *slog.Logger,
	backend contract.IBackend,
	resolver contract.IResolver,
	costs contract.ICostRecorder,
	moderator *moderation.Moderator,
	pacing, askTimeout time.Duration,
	emit func(ctx context.Context, e event.DomainEvent),
) *RoundExecutor {
	return &RoundExecutor{
		log:        log,
		backend:    backend,
		resolver:   resolver,
		costs:      costs,
		moderator:  moderator,
		pacing:     pacing,
		askTimeout: askTimeout,
		emit:       emit,
	}
}

// Run walks the participants in list order. A resolution failure skips the
// participant silently; a provider failure lands inline as a classified
// message. Returns the usable replies collected during the round.
func (e *RoundExecutor) Run(ctx context.Context, in RoundInput) []domain.RoundReply {
	if len(in.Participants) > 1 {
		e.emit(ctx, event.RoundOpened{
			Meeting:      in.MeetingID,
			Round:        in.Round,
			Participants: len(in.Participants),
		})
		e.emit(ctx, event.MessageAppended{
			Meeting: in.MeetingID,
			Message: domain.Message{
				ID:      uuid.New(),
				Sender:  domain.SenderSystem,
				Content: fmt.Sprintf("--- round %d ---", in.Round),
				At:      time.Now().UTC(),
				Round:   in.Round,
			},
		})
	}

	var replies []domain.RoundReply
	for i, p := range in.Participants {
		if i > 0 && !e.pause(ctx) {
			e.log.Info("Round interrupted during pacing", "meeting", in.MeetingID, "round", in.Round)
			return replies
		}

		deskID, err := e.resolver.Resolve(ctx, p.Handle)
		if err != nil {
			// Excluded from the round, no transcript entry.
			e.log.Warn("Participant excluded from round", "handle", p.Handle, "round", in.Round, "error", err)
			continue
		}

		reply, err := e.ask(ctx, in, p, deskID)
		if reply.Cost > 0 {
			e.costs.Record(reply.Cost, reply.Latency)
			e.emit(ctx, event.CostObserved{Meeting: in.MeetingID, Amount: reply.Cost, Latency: reply.Latency})
		}

		if err != nil {
			e.emit(ctx, event.MessageAppended{
				Meeting: in.MeetingID,
				Message: domain.Message{
					ID:      uuid.New(),
					Sender:  string(p.Handle),
					Content: classify.Classify(err.Error()),
					At:      time.Now().UTC(),
					Round:   in.Round,
				},
			})
			continue
		}

		text := reply.Text
		if e.moderator != nil {
			censored, found := e.moderator.Censor(text)
			if len(found) > 0 {
				e.log.Info("Reply censored", "handle", p.Handle, "words", len(found))
			}
			text = censored
		}

		info := whatlanggo.Detect(text)
		e.log.Debug("Reply received",
			"handle", p.Handle,
			"round", in.Round,
			"lang", info.Lang.Iso6391(),
			"latency", reply.Latency,
		)

		cost := reply.Cost
		e.emit(ctx, event.MessageAppended{
			Meeting: in.MeetingID,
			Message: domain.Message{
				ID:      uuid.New(),
				Sender:  string(p.Handle),
				Content: text,
				At:      time.Now().UTC(),
				Round:   in.Round,
				Cost:    &cost,
			},
		})

		replies = append(replies, domain.RoundReply{
			Handle:  p.Handle,
			Name:    p.Meta.Name,
			Content: text,
		})
	}

	return replies
}

// ask performs the single provider call under the per-call timeout.
func (e *RoundExecutor) ask(ctx context.Context, in RoundInput, p domain.Participant, deskID string) (contract.AskReply, error) {
	askCtx := ctx
	if e.askTimeout > 0 {
		var cancel context.CancelFunc
		askCtx, cancel = context.WithTimeout(ctx, e.askTimeout)
		defer cancel()
	}

	req := contract.AskRequest{
		MeetingID: in.MeetingID,
		DeskID:    deskID,
		ModelID:   p.Meta.ModelID,
		Utterance: in.Utterance,
		Round:     in.Round,
	}
	switch in.Round {
	case 1:
		req.History = in.History
	default:
		// Debate framing: only the peers' statements, never the
		// participant's own.
		req.PeerReplies = lo.Filter(in.PriorReplies, func(r domain.RoundReply, _ int) bool {
			return r.Handle != p.Handle
		})
	}

	return e.backend.AskParticipant(askCtx, req)
}

// pause waits the pacing interval so a reader can follow the discussion.
// Returns false when the context was canceled while waiting.
func (e *RoundExecutor) pause(ctx context.Context) bool {
	if e.pacing <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(e.pacing):
		return true
	}
}
