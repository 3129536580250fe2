package repositories

import (
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	processedValue     = "processed"
	badgerDedupePrefix = "dedupe:"
	maxConflictRetries = 3
)

// DedupeRepository keeps processed payment markers in BadgerDB.
type DedupeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDedupeRepository(db *badger.DB, log *slog.Logger) DedupeRepository {
	return DedupeRepository{db: db, log: log}
}

func (r DedupeRepository) IsProcessed(_ context.Context, txID string) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(dedupeKey(txID))
		switch {
		case err == nil:
			found = true
			return nil
		case errors.Is(err, badger.ErrKeyNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return found, nil
}

// MarkProcessed writes the marker only if it is absent.
// Badger transactions are serializable: when two writers race on the same key,
// the loser gets ErrConflict and its retry observes the winner's marker.
func (r DedupeRepository) MarkProcessed(_ context.Context, txID string) (bool, error) {
	key := dedupeKey(txID)
	for attempt := 1; ; attempt++ {
		created := false
		err := r.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			switch {
			case err == nil:
				return nil
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}
			created = true
			return txn.Set(key, []byte(processedValue))
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			r.log.Debug("Dedupe marker conflict, retrying", "transaction_id", txID, "attempt", attempt)
			continue
		}
		if err != nil {
			return false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}
		return created, nil
	}
}

// Marker is a stored dedupe entry as seen by operators.
type Marker struct {
	TxID    string
	Value   string
	Version uint64
}

// Markers lists every processed payment, in key order.
func (r DedupeRepository) Markers() ([]Marker, error) {
	var markers []Marker
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerDedupePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			markers = append(markers, Marker{
				TxID:    strings.TrimPrefix(string(item.Key()), badgerDedupePrefix),
				Value:   string(value),
				Version: item.Version(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return markers, nil
}

func dedupeKey(txID string) []byte {
	return []byte(badgerDedupePrefix + txID)
}
