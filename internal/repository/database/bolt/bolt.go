// Package bolt keeps form state in a single local file, for running the
// service as a personal tool without a database server.
package bolt

import (
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

const formsBucket = "forms"

var _ database.Repository = (*boltProvider)(nil)

type boltProvider struct {
	logger logging.Logger
	db     *bolt.DB
}

// record is what goes into the bucket, the key is the storage key.
type record struct {
	ID        uint      `json:"id"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBoltProvider(path string, logger logging.Logger) (database.Repository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}

	return &boltProvider{
		logger: logger,
		db:     db,
	}, nil
}

func (b *boltProvider) Migrate() error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(formsBucket))
		return err
	})
}

func (b *boltProvider) Close() error {
	return b.db.Close()
}

func (b *boltProvider) LoadForm(ctx context.Context, key string) (*entities.FormState, error) {
	var rec *record
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(formsBucket))
		if bucket == nil {
			return nil
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		rec = &record{}
		return json.Unmarshal(raw, rec)
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, database.ErrFormNotFound
	}

	state := &entities.FormState{
		StorageKey: key,
		Data:       rec.Data,
	}
	state.ID = rec.ID
	state.CreatedAt = rec.CreatedAt
	state.UpdatedAt = rec.UpdatedAt
	return state, nil
}

func (b *boltProvider) SaveForm(ctx context.Context, state entities.FormState) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(formsBucket))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		rec := record{
			Data:      state.Data,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if existing := bucket.Get([]byte(state.StorageKey)); existing != nil {
			prev := record{}
			if err := json.Unmarshal(existing, &prev); err == nil {
				rec.ID = prev.ID
				rec.CreatedAt = prev.CreatedAt
			} else {
				b.logger.Warn("replacing unreadable form record %s: %v", state.StorageKey, err)
			}
		}
		if rec.ID == 0 {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			rec.ID = uint(seq)
		}

		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(state.StorageKey), raw)
	})
}

func (b *boltProvider) DeleteForm(ctx context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(formsBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
}
