// Package provider contains the stand-in "ask a model" collaborator.
// Real model integrations live outside this module; the scripted provider
// exists so the CLI and tests have a deterministic conversation partner.
package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"roundtable/contract"
	"roundtable/domain"
)

// Scripted answers deterministically from the request content. Cost is
// proportional to the produced text so the ledger has something to fold.
type Scripted struct {
	mu    sync.Mutex
	delay time.Duration
	calls map[string]int
}

func NewScripted(delay time.Duration) *Scripted {
	return &Scripted{delay: delay, calls: make(map[string]int)}
}

func (p *Scripted) Ask(ctx context.Context, req contract.AskRequest) (contract.AskReply, error) {
	start := time.Now()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return contract.AskReply{}, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	p.mu.Lock()
	p.calls[req.DeskID]++
	nth := p.calls[req.DeskID]
	p.mu.Unlock()

	text := openingReply(req, nth)
	if len(req.PeerReplies) > 0 {
		text = debateReply(req)
	}

	return contract.AskReply{
		Text:    text,
		Cost:    float64(len(text)) * 1e-5,
		Latency: time.Since(start),
	}, nil
}

func openingReply(req contract.AskRequest, nth int) string {
	return fmt.Sprintf("On %q: as %s I would start with point %d and take it from there.",
		req.Utterance, req.ModelID, nth)
}

// debateReply references the peers by name, matching the round-2 framing.
func debateReply(req contract.AskRequest) string {
	names := lo.Map(req.PeerReplies, func(r domain.RoundReply, _ int) string {
		return r.Name
	})
	return fmt.Sprintf("Having read %s on %q, as %s I partly agree but would weigh the trade-offs differently.",
		strings.Join(names, " and "), req.Utterance, req.ModelID)
}
