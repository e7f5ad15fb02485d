package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"roundtable/domain"
)

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type messageRow struct {
	ID           string   `json:"id"`
	SenderDeskID string   `json:"sender_desk_id,omitempty"`
	Kind         string   `json:"kind"`
	Content      string   `json:"content"`
	Round        int      `json:"round"`
	Cost         *float64 `json:"cost,omitempty"`
	At           int64    `json:"at"`
}

// messageKey is "msg:{meeting}:{timestamp_padded}:{uuid}":
//  1. 19-digit zero padding keeps chronological lexicographic order.
//  2. The UUID disambiguates two messages landing on the same nanosecond.
func messageKey(meetingID string, m domain.StoredMessage) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", meetingID, m.At.UnixNano(), m.ID))
}

func messagePrefix(meetingID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", meetingID))
}

func (r MessageRepository) StoreMessage(meetingID string, m domain.StoredMessage) error {
	bytes, err := json.Marshal(fromStoredMessage(m))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(meetingID, m), bytes)
	})
}

// GetMessages returns the meeting's history in chronological order, capped
// at the configured limit when one is set.
func (r MessageRepository) GetMessages(meetingID string) ([]domain.StoredMessage, error) {
	var rows []messageRow
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := messagePrefix(meetingID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(rows) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *r.limitMessages))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var row messageRow
				if err := json.Unmarshal(value, &row); err != nil {
					return err
				}
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.StoredMessage, 0, len(rows))
	for _, row := range rows {
		m, err := toStoredMessage(row)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Last returns the most recent message, found by a reverse seek past the
// highest possible timestamp.
func (r MessageRepository) Last(meetingID string) (domain.StoredMessage, bool, error) {
	var row messageRow
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := messagePrefix(meetingID)
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		it.Seek(seekKey)
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		found = true
		return it.Item().Value(func(value []byte) error {
			return json.Unmarshal(value, &row)
		})
	})
	if err != nil || !found {
		return domain.StoredMessage{}, false, err
	}
	m, err := toStoredMessage(row)
	if err != nil {
		return domain.StoredMessage{}, false, err
	}
	return m, true, nil
}

func (r MessageRepository) Count(meetingID string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := messagePrefix(meetingID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (r MessageRepository) DeleteFor(meetingID string) error {
	return r.db.DropPrefix(messagePrefix(meetingID))
}

func (r MessageRepository) DeleteAll() error {
	return r.db.DropPrefix([]byte("msg:"))
}

func fromStoredMessage(m domain.StoredMessage) messageRow {
	return messageRow{
		ID:           m.ID.String(),
		SenderDeskID: m.SenderDeskID,
		Kind:         string(m.Kind),
		Content:      m.Content,
		Round:        m.Round,
		Cost:         m.Cost,
		At:           m.At.UnixNano(),
	}
}

func toStoredMessage(row messageRow) (domain.StoredMessage, error) {
	parsedID, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.StoredMessage{}, err
	}
	return domain.StoredMessage{
		ID:           parsedID,
		SenderDeskID: row.SenderDeskID,
		Kind:         domain.SenderKind(row.Kind),
		Content:      row.Content,
		Round:        row.Round,
		Cost:         row.Cost,
		At:           time.Unix(0, row.At).UTC(),
	}, nil
}
