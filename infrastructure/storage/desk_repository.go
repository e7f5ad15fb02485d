// Package storage persists desks, meetings and messages in BadgerDB.
// Rows are JSON-encoded; keys are prefixed per entity kind.
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

type DeskRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDeskRepository(db *badger.DB, log *slog.Logger) DeskRepository {
	return DeskRepository{db: db, log: log}
}

type deskRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Avatar    string `json:"avatar,omitempty"`
	ModelID   string `json:"model_id"`
	CreatedAt int64  `json:"created_at"`
}

func deskKey(id string) []byte {
	return []byte("desk:" + id)
}

func (r DeskRepository) StoreDesk(rec domain.DeskRecord) error {
	bytes, err := json.Marshal(fromDeskRecord(rec))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(deskKey(rec.ID), bytes)
	})
}

func (r DeskRepository) GetDesk(id string) (domain.DeskRecord, error) {
	var row deskRow
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(deskKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &row)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.DeskRecord{}, fmt.Errorf("%w: %s", apperrors.ErrDeskNotFound, id)
	}
	if err != nil {
		return domain.DeskRecord{}, err
	}
	return toDeskRecord(row), nil
}

func fromDeskRecord(rec domain.DeskRecord) deskRow {
	return deskRow{
		ID:        rec.ID,
		Name:      rec.Name,
		Color:     rec.Color,
		Avatar:    rec.Avatar,
		ModelID:   rec.ModelID,
		CreatedAt: rec.CreatedAt.UnixNano(),
	}
}

func toDeskRecord(row deskRow) domain.DeskRecord {
	return domain.DeskRecord{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		Avatar:    row.Avatar,
		ModelID:   row.ModelID,
		CreatedAt: time.Unix(0, row.CreatedAt).UTC(),
	}
}
