package storage

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.etcd.io/bbolt"

	"svw.info/dedoku/internal/domain"
)

// Bolt keeps every puzzle in a single database file, one bucket per
// difficulty, keyed by puzzle ID.
type Bolt struct {
	db *bbolt.DB
}

func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, d := range domain.Difficulties() {
			if _, err := tx.CreateBucketIfNotExists([]byte(d.String())); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Close() error { return s.db.Close() }

func (s *Bolt) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return os.ErrInvalid
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(p.Difficulty.String())).Put([]byte(p.ID), data)
	})
}

func (s *Bolt) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out *domain.Puzzle
	err := s.db.View(func(tx *bbolt.Tx) error {
		for _, d := range domain.Difficulties() {
			data := tx.Bucket([]byte(d.String())).Get([]byte(id))
			if data == nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil {
				return err
			}
			if p.Difficulty == 0 {
				p.Difficulty = d
			}
			out = &p
			return nil
		}
		return os.ErrNotExist
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Bolt) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bbolt.Tx) error {
		for _, d := range domain.Difficulties() {
			err := tx.Bucket([]byte(d.String())).ForEach(func(_, data []byte) error {
				if meta, ok := decodeMeta(data, d); ok {
					out = append(out, meta)
				}
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
	return out, nil
}
