package e2e

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/suite"

	"roundtable/domain"
	"roundtable/infrastructure/backendapi"
	"roundtable/infrastructure/search"
	"roundtable/infrastructure/storage"
	"roundtable/moderation"
	"roundtable/observability"
	"roundtable/projection"
	"roundtable/provider"
	"roundtable/runtime"
	"roundtable/services"
)

// DiscussionSuite wires the whole stack the way cmd/meet does, with the
// scripted provider standing in for real models.
type DiscussionSuite struct {
	suite.Suite
	cleanup  func()
	service  services.IMeetingService
	backend  *backendapi.LocalBackend
	ledger   *observability.CostLedger
	timeline *projection.Timeline
}

func (s *DiscussionSuite) SetupTest() {
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(s.T().TempDir())
	s.Require().NoError(err)
	s.cleanup = func() { database.CleanupDB(badgerDB, blugeWriter) }

	log := slog.Default()
	moderator, err := moderation.NewModerator([]string{"flamewar"}, '*')
	s.Require().NoError(err)

	s.backend = backendapi.NewLocalBackend(
		log,
		storage.NewDeskRepository(badgerDB, log),
		storage.NewMeetingRepository(badgerDB, log),
		storage.NewMessageRepository(badgerDB, log, nil),
		search.NewTranscriptIndex(blugeWriter, log),
		provider.NewScripted(0),
	)

	resolver := runtime.NewDeskResolver(s.backend, log)
	s.ledger = observability.NewCostLedger()
	session := runtime.NewSession(log, s.backend, resolver, s.ledger, &moderator, 0, 0, 0)

	s.timeline = projection.NewTimeline()
	session.AddSinks(s.timeline)

	s.service = services.NewMeetingService(session)
}

func (s *DiscussionSuite) TearDownTest() {
	s.cleanup()
}

func (s *DiscussionSuite) roster() []domain.Participant {
	return []domain.Participant{
		{Handle: "ada", Meta: domain.DisplayMeta{Name: "Ada", Color: "#4060ff", ModelID: "model-a"}},
		{Handle: "bob", Meta: domain.DisplayMeta{Name: "Bob", Color: "#ff6040", ModelID: "model-b"}},
	}
}

func (s *DiscussionSuite) Test_Full_Two_Round_Cycle_Survives_A_Restart() {
	req := s.Require()
	ctx := context.Background()

	req.NoError(s.service.StartSession(ctx, "monolith or microservices", s.roster()))
	req.Equal(domain.PhaseIdle, s.service.Phase())

	req.NoError(s.service.SubmitUtterance(ctx, "what should we ship first?"))
	req.Equal(domain.PhaseAwaitingRound2, s.service.Phase())

	req.NoError(s.service.ConfirmRound2(ctx))
	req.Equal(domain.PhaseIdle, s.service.Phase())

	// user + 2 dividers + 2 openings + 2 rebuttals
	transcript := s.service.Transcript()
	req.Len(transcript, 7)
	req.Equal(len(transcript), len(s.timeline.Messages()))

	snapshot := s.ledger.Snapshot()
	req.Equal(int64(4), snapshot.SessionCalls)
	req.Positive(snapshot.SessionTotal)

	meetingID := func() string {
		meetings, err := s.backend.ListMeetings(ctx, nil)
		req.NoError(err)
		req.Len(meetings, 1)
		return meetings[0].ID
	}()

	req.NoError(s.service.EndSession(ctx))
	req.Equal(domain.PhaseIdle, s.service.Phase())

	// A fresh resume lands in idle with the durable transcript. Dividers are
	// runtime-only, so only user and agent messages come back.
	req.NoError(s.service.ResumeSession(ctx, meetingID))
	req.Equal(domain.PhaseIdle, s.service.Phase())
	resumed := s.service.Transcript()
	req.Len(resumed, 5)
	req.Equal(domain.SenderUser, resumed[0].Sender)
}

func (s *DiscussionSuite) Test_Declined_Debate_Keeps_The_Session_Usable() {
	req := s.Require()
	ctx := context.Background()

	req.NoError(s.service.StartSession(ctx, "naming things", s.roster()))
	req.NoError(s.service.SubmitUtterance(ctx, "camelCase or snake_case?"))
	req.Equal(domain.PhaseAwaitingRound2, s.service.Phase())

	req.NoError(s.service.DeclineRound2(ctx))
	req.Equal(domain.PhaseIdle, s.service.Phase())

	// The next utterance opens a brand-new cycle.
	req.NoError(s.service.SubmitUtterance(ctx, "fine, next topic"))
	req.Equal(domain.PhaseAwaitingRound2, s.service.Phase())
}

func TestDiscussionSuite(t *testing.T) {
	suite.Run(t, new(DiscussionSuite))
}
