package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	cerrors "chat-core/errors"
)

// BadgerStore persists collections in BadgerDB.
//
// Primary keys are formatted as "rec:{collection}:{insertion_nanos_padded}:{id}":
//  1. The 19-digit zero padding makes a prefix scan yield records in
//     insertion order (lexicographical order), which is the tie-break
//     contract of Find.
//  2. The id suffix disambiguates two records created in the same nanosecond.
//
// A secondary "idx:{collection}:{id}" entry maps an id back to its primary
// key for Update and Delete.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) Create(_ context.Context, collection string, rec Record) (Record, error) {
	created := clone(rec)
	if created.ID() == "" {
		created["id"] = uuid.NewString()
	}
	primary := primaryKey(collection, time.Now().UTC().UnixNano(), created.ID())
	data, err := json.Marshal(created)
	if err != nil {
		return nil, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, data); err != nil {
			return err
		}
		return txn.Set(indexKey(collection, created.ID()), primary)
	})
	if err != nil {
		return nil, err
	}
	// Return the persisted form, so fresh records carry the same value
	// types a later read would.
	var stored Record
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *BadgerStore) Find(_ context.Context, collection string, q Query) ([]Record, error) {
	var recs []Record
	prefix := []byte(fmt.Sprintf("rec:%s:", collection))
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var rec Record
				if err := json.Unmarshal(v, &rec); err != nil {
					return fmt.Errorf("corrupt record in %s: %w", collection, err)
				}
				recs = append(recs, rec)
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
	return applyQuery(recs, q), nil
}

func (s *BadgerStore) FindOne(ctx context.Context, collection string, q Query) (Record, bool, error) {
	q.Limit = 1
	recs, err := s.Find(ctx, collection, q)
	if err != nil {
		return nil, false, err
	}
	if len(recs) == 0 {
		return nil, false, nil
	}
	return recs[0], true, nil
}

func (s *BadgerStore) Update(_ context.Context, collection, id string, partial Record) (Record, error) {
	var updated Record
	err := s.db.Update(func(txn *badger.Txn) error {
		primary, err := resolvePrimary(txn, collection, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(primary)
		if err != nil {
			return fmt.Errorf("%w: record %s/%s", cerrors.ErrNotFound, collection, id)
		}
		if err := item.Value(func(v []byte) error {
			return json.Unmarshal(v, &updated)
		}); err != nil {
			return err
		}
		for k, v := range partial {
			if k == "id" {
				continue
			}
			updated[k] = v
		}
		data, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		if err := txn.Set(primary, data); err != nil {
			return err
		}
		updated = nil
		return json.Unmarshal(data, &updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BadgerStore) Delete(_ context.Context, collection, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		primary, err := resolvePrimary(txn, collection, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(primary); err != nil {
			return err
		}
		return txn.Delete(indexKey(collection, id))
	})
}

func resolvePrimary(txn *badger.Txn, collection, id string) ([]byte, error) {
	item, err := txn.Get(indexKey(collection, id))
	if err != nil {
		return nil, fmt.Errorf("%w: record %s/%s", cerrors.ErrNotFound, collection, id)
	}
	return item.ValueCopy(nil)
}

func primaryKey(collection string, nanos int64, id string) []byte {
	return []byte(fmt.Sprintf("rec:%s:%019d:%s", collection, nanos, id))
}

func indexKey(collection, id string) []byte {
	return []byte(fmt.Sprintf("idx:%s:%s", collection, id))
}

func clone(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
