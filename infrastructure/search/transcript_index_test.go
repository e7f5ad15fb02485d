package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"

	"roundtable/domain"
)

func Test_Index_And_Search_By_Content(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewTranscriptIndex(blugeWriter, slog.Default())
	meetingID := uuid.NewString()

	messages := []domain.StoredMessage{
		{ID: uuid.New(), Kind: domain.KindUser, Content: "should we adopt kubernetes?", At: time.Now().UTC()},
		{ID: uuid.New(), Kind: domain.KindAgent, Content: "kubernetes brings operational cost", Round: 1, At: time.Now().UTC()},
		{ID: uuid.New(), Kind: domain.KindAgent, Content: "a plain binary is simpler", Round: 1, At: time.Now().UTC()},
	}
	for _, m := range messages {
		req.NoError(index.Index(meetingID, "platform choices", m))
	}

	hits, err := index.Search(context.Background(), "kubernetes", 10)
	req.NoError(err)
	req.Len(hits, 2)
	for _, h := range hits {
		req.Equal(meetingID, h.MeetingID)
		req.Contains(h.Content, "kubernetes")
		req.Positive(h.Score)
	}
}

func Test_Search_Without_Match_Returns_Nothing(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewTranscriptIndex(blugeWriter, slog.Default())
	m := domain.StoredMessage{ID: uuid.New(), Kind: domain.KindAgent, Content: "nothing of note", At: time.Now().UTC()}
	req.NoError(index.Index(uuid.NewString(), "quiet meeting", m))

	hits, err := index.Search(context.Background(), "zeppelin", 10)
	req.NoError(err)
	req.Empty(hits)
}
