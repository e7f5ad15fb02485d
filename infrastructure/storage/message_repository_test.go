package storage

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"roundtable/domain"
)

func domainMessage(kind, content string, round int, at time.Time) domain.StoredMessage {
	return domain.StoredMessage{
		ID:      uuid.New(),
		Kind:    domain.SenderKind(kind),
		Content: content,
		Round:   round,
		At:      at,
	}
}

func Test_Store_And_Get_Messages_In_Chronological_Order(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), nil)
	meetingID := uuid.NewString()
	at := time.Now().UTC()

	// Stored out of order on purpose; the key encodes the timestamp.
	late := domainMessage("agent", "third", 2, at.Add(2*time.Minute))
	early := domainMessage("user", "first", 0, at)
	middle := domainMessage("agent", "second", 1, at.Add(time.Minute))
	req.NoError(repository.StoreMessage(meetingID, late))
	req.NoError(repository.StoreMessage(meetingID, early))
	req.NoError(repository.StoreMessage(meetingID, middle))

	fetched, err := repository.GetMessages(meetingID)
	req.NoError(err)

	req.Len(fetched, 3)
	req.Equal("first", fetched[0].Content)
	req.Equal("second", fetched[1].Content)
	req.Equal("third", fetched[2].Content)
}

func Test_GetMessages_Respects_Configured_Limit(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), lo.ToPtr(2))
	meetingID := uuid.NewString()
	at := time.Now().UTC()

	for i := 0; i < 5; i++ {
		m := domainMessage("agent", "m", 1, at.Add(time.Duration(i)*time.Second))
		req.NoError(repository.StoreMessage(meetingID, m))
	}

	fetched, err := repository.GetMessages(meetingID)
	req.NoError(err)
	req.Len(fetched, 2)
}

func Test_Last_Returns_The_Most_Recent_Message(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), nil)
	meetingID := uuid.NewString()
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(meetingID, domainMessage("user", "old", 0, at)))
	req.NoError(repository.StoreMessage(meetingID, domainMessage("agent", "newest", 1, at.Add(time.Hour))))

	last, found, err := repository.Last(meetingID)
	req.NoError(err)
	req.True(found)
	req.Equal("newest", last.Content)

	_, found, err = repository.Last("no-such-meeting")
	req.NoError(err)
	req.False(found)
}

func Test_DeleteFor_Only_Removes_One_Meeting(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), nil)
	doomed := uuid.NewString()
	kept := uuid.NewString()
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(doomed, domainMessage("user", "bye", 0, at)))
	req.NoError(repository.StoreMessage(kept, domainMessage("user", "stay", 0, at)))

	req.NoError(repository.DeleteFor(doomed))

	count, err := repository.Count(doomed)
	req.NoError(err)
	req.Zero(count)

	count, err = repository.Count(kept)
	req.NoError(err)
	req.Equal(1, count)
}

func Test_Message_Round_Trip_Preserves_Cost_And_Sender(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), nil)
	meetingID := uuid.NewString()

	original := domainMessage("agent", "priced reply", 1, time.Now().UTC())
	original.SenderDeskID = "desk-77"
	original.Cost = lo.ToPtr(0.0042)
	req.NoError(repository.StoreMessage(meetingID, original))

	fetched, err := repository.GetMessages(meetingID)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(original, fetched[0])
}
