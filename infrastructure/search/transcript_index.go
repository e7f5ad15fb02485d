// Package search maintains a full-text index over persisted transcript
// messages, used by the history tooling.
package search

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"

	"roundtable/domain"
)

type TranscriptIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// Hit is one matching transcript entry.
type Hit struct {
	MeetingID string
	MessageID string
	Content   string
	Score     float64
}

func NewTranscriptIndex(writer *bluge.Writer, log *slog.Logger) *TranscriptIndex {
	return &TranscriptIndex{writer: writer, log: log}
}

// Index upserts one message document keyed by its UUID.
func (i *TranscriptIndex) Index(meetingID, topic string, m domain.StoredMessage) error {
	doc := bluge.NewDocument(m.ID.String()).
		AddField(bluge.NewKeywordField("meeting_id", meetingID).StoreValue()).
		AddField(bluge.NewTextField("topic", topic)).
		AddField(bluge.NewTextField("content", m.Content).StoreValue()).
		AddField(bluge.NewKeywordField("kind", string(m.Kind))).
		AddField(bluge.NewNumericField("round", float64(m.Round)))

	return i.writer.Update(doc.ID(), doc)
}

// Search matches the term against message content and topic.
func (i *TranscriptIndex) Search(ctx context.Context, term string, limit int) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().AddShould(
		bluge.NewMatchQuery(term).SetField("content"),
		bluge.NewMatchQuery(term).SetField("topic"),
	)

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}

		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID = string(value)
			case "meeting_id":
				hit.MeetingID = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
