// repository/booking/bookingRepository.go
package booking

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/sharma2rachit/zenith-rental/model"
	"github.com/sharma2rachit/zenith-rental/util/database"
)

var ErrNotFound = errors.New("booking not found")

const keyPrefix = "booking:"

// Repo is the durable store for finalized bookings. Records are addressed by
// id and never deleted; Update applies its mutator atomically per id.
type Repo interface {
	Put(ctx context.Context, rec *model.BookingRecord) error
	Get(ctx context.Context, id string) (*model.BookingRecord, error)
	Update(ctx context.Context, id string, mutate func(*model.BookingRecord) error) (*model.BookingRecord, error)
	List(ctx context.Context) ([]model.BookingRecord, error)
}

type repo struct{ db *badger.DB }

func New(db *database.DB) Repo { return &repo{db: db.Badger} }

func key(id string) []byte { return []byte(keyPrefix + id) }

func (r *repo) Put(ctx context.Context, rec *model.BookingRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.ID), val)
	})
}

func (r *repo) Get(ctx context.Context, id string) (*model.BookingRecord, error) {
	var rec model.BookingRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update runs read-mutate-write inside one transaction, so concurrent cancel
// and modify on the same id never leave a half-applied record behind. An error
// from the mutator aborts the write and is returned unwrapped.
func (r *repo) Update(ctx context.Context, id string, mutate func(*model.BookingRecord) error) (*model.BookingRecord, error) {
	var rec model.BookingRecord
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}
		if err := mutate(&rec); err != nil {
			return err
		}
		out, err := json.Marshal(&rec)
		if err != nil {
			return err
		}
		return txn.Set(key(id), out)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) List(ctx context.Context) ([]model.BookingRecord, error) {
	var out []model.BookingRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec model.BookingRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
