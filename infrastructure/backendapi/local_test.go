package backendapi

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"roundtable/contract"
	"roundtable/domain"
	apperrors "roundtable/errors"
	"roundtable/infrastructure/search"
	"roundtable/infrastructure/storage"
	"roundtable/provider"
)

func newTestBackend(t *testing.T) *LocalBackend {
	t.Helper()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { database.CleanupDB(badgerDB, blugeWriter) })

	log := slog.Default()
	return NewLocalBackend(
		log,
		storage.NewDeskRepository(badgerDB, log),
		storage.NewMeetingRepository(badgerDB, log),
		storage.NewMessageRepository(badgerDB, log, nil),
		search.NewTranscriptIndex(blugeWriter, log),
		provider.NewScripted(0),
	)
}

func provisionDesk(t *testing.T, backend *LocalBackend, name, model string) string {
	t.Helper()
	id, err := backend.CreateDeskRecord(context.Background(), domain.DisplayMeta{Name: name, ModelID: model})
	require.NoError(t, err)
	return id
}

func Test_StartMeeting_Skips_Missing_Desks(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	known := provisionDesk(t, backend, "Ada", "model-a")

	meeting, err := backend.StartMeeting(ctx, "partial roster", []string{known, "ghost-desk"})
	req.NoError(err)
	req.Len(meeting.Participants, 1)
	req.Equal("Ada", meeting.Participants[0].Name)
}

func Test_StartMeeting_Without_Any_Desk_Fails(t *testing.T) {
	backend := newTestBackend(t)

	_, err := backend.StartMeeting(context.Background(), "empty", []string{"ghost"})
	require.ErrorIs(t, err, apperrors.ErrNoParticipants)
}

func Test_AskParticipant_Persists_The_Utterance_Once(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	ada := provisionDesk(t, backend, "Ada", "model-a")
	bob := provisionDesk(t, backend, "Bob", "model-b")
	meeting, err := backend.StartMeeting(ctx, "dedup check", []string{ada, bob})
	req.NoError(err)

	ask := func(deskID string) {
		_, err := backend.AskParticipant(ctx, contract.AskRequest{
			MeetingID: meeting.ID,
			DeskID:    deskID,
			ModelID:   "model",
			Utterance: "same question for everyone",
			Round:     1,
		})
		req.NoError(err)
	}
	ask(ada)
	ask(bob)

	stored, err := backend.GetMeeting(ctx, meeting.ID)
	req.NoError(err)

	// One user message followed by one reply per desk.
	req.Len(stored.Messages, 3)
	req.Equal(domain.KindUser, stored.Messages[0].Kind)
	req.Equal(domain.KindAgent, stored.Messages[1].Kind)
	req.Equal(domain.KindAgent, stored.Messages[2].Kind)
	req.NotNil(stored.Messages[1].Cost)
}

func Test_AskParticipant_Rejects_Ended_Meeting(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	ada := provisionDesk(t, backend, "Ada", "model-a")
	meeting, err := backend.StartMeeting(ctx, "closing time", []string{ada})
	req.NoError(err)
	req.NoError(backend.EndMeeting(ctx, meeting.ID))

	_, err = backend.AskParticipant(ctx, contract.AskRequest{
		MeetingID: meeting.ID,
		DeskID:    ada,
		Utterance: "anyone still there?",
		Round:     1,
	})
	req.ErrorIs(err, apperrors.ErrMeetingEnded)
}

func Test_ReactivateMeeting_Returns_Header_And_Messages(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	ada := provisionDesk(t, backend, "Ada", "model-a")
	meeting, err := backend.StartMeeting(ctx, "paused thread", []string{ada})
	req.NoError(err)

	_, err = backend.AskParticipant(ctx, contract.AskRequest{
		MeetingID: meeting.ID,
		DeskID:    ada,
		ModelID:   "model-a",
		Utterance: "remember this",
		Round:     1,
	})
	req.NoError(err)
	req.NoError(backend.EndMeeting(ctx, meeting.ID))

	resumed, err := backend.ReactivateMeeting(ctx, meeting.ID)
	req.NoError(err)
	req.Equal(domain.StatusActive, resumed.Status)
	req.Len(resumed.Messages, 2)
	req.Equal("remember this", resumed.Messages[0].Content)
}

func Test_ListMeetings_Carries_Message_Counts(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	ada := provisionDesk(t, backend, "Ada", "model-a")
	meeting, err := backend.StartMeeting(ctx, "counted", []string{ada})
	req.NoError(err)

	_, err = backend.AskParticipant(ctx, contract.AskRequest{
		MeetingID: meeting.ID,
		DeskID:    ada,
		ModelID:   "model-a",
		Utterance: "count me",
		Round:     1,
	})
	req.NoError(err)

	summaries, err := backend.ListMeetings(ctx, nil)
	req.NoError(err)
	req.Len(summaries, 1)
	req.Equal(2, summaries[0].MessageCount)
}

func Test_DeleteMeeting_Removes_Header_And_Messages(t *testing.T) {
	req := require.New(t)
	backend := newTestBackend(t)
	ctx := context.Background()

	ada := provisionDesk(t, backend, "Ada", "model-a")
	meeting, err := backend.StartMeeting(ctx, "disposable", []string{ada})
	req.NoError(err)

	req.NoError(backend.DeleteMeeting(ctx, meeting.ID))

	_, err = backend.GetMeeting(ctx, meeting.ID)
	req.ErrorIs(err, apperrors.ErrMeetingNotFound)
}
