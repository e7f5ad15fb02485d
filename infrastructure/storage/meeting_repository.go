package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"roundtable/domain"
	apperrors "roundtable/errors"
)

type MeetingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMeetingRepository(db *badger.DB, log *slog.Logger) MeetingRepository {
	return MeetingRepository{db: db, log: log}
}

type meetingRow struct {
	ID           string           `json:"id"`
	Topic        string           `json:"topic"`
	Participants []participantRow `json:"participants"`
	Status       string           `json:"status"`
	StartedAt    int64            `json:"started_at"`
	EndedAt      *int64           `json:"ended_at,omitempty"`
}

type participantRow struct {
	DeskID  string `json:"desk_id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	ModelID string `json:"model_id"`
}

func meetingKey(id string) []byte {
	return []byte("meeting:" + id)
}

var meetingPrefix = []byte("meeting:")

// StoreMeeting persists the meeting header. Messages live under their own
// prefix, see MessageRepository.
func (r MeetingRepository) StoreMeeting(m domain.BackendMeeting) error {
	bytes, err := json.Marshal(fromBackendMeeting(m))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(meetingKey(m.ID), bytes)
	})
}

// GetMeeting returns the meeting header without its messages.
func (r MeetingRepository) GetMeeting(id string) (domain.BackendMeeting, error) {
	var row meetingRow
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(meetingKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &row)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.BackendMeeting{}, fmt.Errorf("%w: %s", apperrors.ErrMeetingNotFound, id)
	}
	if err != nil {
		return domain.BackendMeeting{}, err
	}
	return toBackendMeeting(row), nil
}

// SetStatus flips the meeting between active and ended.
func (r MeetingRepository) SetStatus(id string, status domain.MeetingStatus, endedAt *time.Time) error {
	meeting, err := r.GetMeeting(id)
	if err != nil {
		return err
	}
	meeting.Status = status
	meeting.EndedAt = endedAt
	return r.StoreMeeting(meeting)
}

// ListMeetings scans the meeting prefix, optionally filtered by status.
// Summaries come back without message counts; the backend facade fills
// those in from the message repository.
func (r MeetingRepository) ListMeetings(status *domain.MeetingStatus) ([]domain.MeetingSummary, error) {
	var summaries []domain.MeetingSummary
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(meetingPrefix); it.ValidForPrefix(meetingPrefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var row meetingRow
				if err := json.Unmarshal(value, &row); err != nil {
					return err
				}
				if status != nil && row.Status != string(*status) {
					return nil
				}
				summaries = append(summaries, domain.MeetingSummary{
					ID:        row.ID,
					Topic:     row.Topic,
					Status:    domain.MeetingStatus(row.Status),
					StartedAt: time.Unix(0, row.StartedAt).UTC(),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return summaries, err
}

func (r MeetingRepository) DeleteMeeting(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(meetingKey(id))
	})
}

func (r MeetingRepository) DeleteAll() error {
	return r.db.DropPrefix(meetingPrefix)
}

func fromBackendMeeting(m domain.BackendMeeting) meetingRow {
	row := meetingRow{
		ID:        m.ID,
		Topic:     m.Topic,
		Status:    string(m.Status),
		StartedAt: m.StartedAt.UnixNano(),
	}
	if m.EndedAt != nil {
		ended := m.EndedAt.UnixNano()
		row.EndedAt = &ended
	}
	for _, p := range m.Participants {
		row.Participants = append(row.Participants, participantRow{
			DeskID:  p.DeskID,
			Name:    p.Name,
			Color:   p.Color,
			ModelID: p.ModelID,
		})
	}
	return row
}

func toBackendMeeting(row meetingRow) domain.BackendMeeting {
	m := domain.BackendMeeting{
		ID:        row.ID,
		Topic:     row.Topic,
		Status:    domain.MeetingStatus(row.Status),
		StartedAt: time.Unix(0, row.StartedAt).UTC(),
	}
	if row.EndedAt != nil {
		ended := time.Unix(0, *row.EndedAt).UTC()
		m.EndedAt = &ended
	}
	for _, p := range row.Participants {
		m.Participants = append(m.Participants, domain.EntityParticipant{
			DeskID:  p.DeskID,
			Name:    p.Name,
			Color:   p.Color,
			ModelID: p.ModelID,
		})
	}
	return m
}
