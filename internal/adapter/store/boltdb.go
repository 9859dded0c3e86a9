package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"overview/internal/domain"
)

var (
	bucketFiles    = []byte("files")
	bucketMeta     = []byte("meta")
	keyGeneratedAt = []byte("generated_at")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFiles, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) PutState(state domain.FileState) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(state)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketFiles).Put([]byte(state.RelPath), data)
	})
}

func (s *BoltStore) GetState(relPath string) (domain.FileState, bool, error) {
	var state domain.FileState
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFiles).Get([]byte(relPath))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &state); err != nil {
			return err
		}
		found = true
		return nil
	})
	return state, found, err
}

func (s *BoltStore) ListStates() ([]domain.FileState, error) {
	var states []domain.FileState
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, v []byte) error {
			var state domain.FileState
			if err := json.Unmarshal(v, &state); err != nil {
				return err
			}
			states = append(states, state)
			return nil
		})
	})
	return states, err
}

func (s *BoltStore) DeleteState(relPath string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Delete([]byte(relPath))
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketFiles); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketFiles)
		return err
	})
}

func (s *BoltStore) SetGeneratedAt(t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyGeneratedAt, []byte(t.UTC().Format(time.RFC3339)))
	})
}

func (s *BoltStore) GeneratedAt() (time.Time, error) {
	var t time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyGeneratedAt)
		if data == nil {
			return nil
		}
		parsed, err := time.Parse(time.RFC3339, string(data))
		if err != nil {
			return err
		}
		t = parsed
		return nil
	})
	return t, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
