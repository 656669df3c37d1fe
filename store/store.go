// Package store persists the progression list under a single key.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/storage"
)

type Store struct {
	storage storage.Storage
	key     string
}

func New(s storage.Storage, key string) *Store {
	return &Store{storage: s, key: key}
}

// Load never fails. Anything it cannot read is treated as no data, since the
// next mutation rewrites the whole list anyway.
func (s *Store) Load() []model.Progression {
	data, ok, err := s.storage.Get(s.key)
	if err != nil {
		log.Warn("Could not read stored progressions, starting empty", "key", s.key, "err", err)
		return []model.Progression{}
	}
	if !ok {
		return []model.Progression{}
	}
	progressions, err := Decode(data)
	if err != nil {
		log.Warn("Stored progressions are malformed, starting empty", "key", s.key, "err", err)
		return []model.Progression{}
	}
	log.Debug("Loaded progressions", "key", s.key, "count", len(progressions))
	return progressions
}

func (s *Store) Save(progressions []model.Progression) error {
	data, err := Encode(progressions)
	if err != nil {
		return err
	}
	if err := s.storage.Set(s.key, data); err != nil {
		return fmt.Errorf("could not save progressions: %w", err)
	}
	log.Debug("Saved progressions", "key", s.key, "count", len(progressions))
	return nil
}

func (s *Store) Clear() error {
	if err := s.storage.Remove(s.key); err != nil {
		return fmt.Errorf("could not clear progressions: %w", err)
	}
	log.Debug("Cleared progressions", "key", s.key)
	return nil
}

// Encode writes the persisted layout: an array of
// {"melodyNotes": [...], "chordNotes": [...]}. Sequences are never null.
func Encode(progressions []model.Progression) ([]byte, error) {
	out := make([]model.Progression, len(progressions))
	for i, p := range progressions {
		out[i] = p.Clone()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("could not encode progressions: %w", err)
	}
	return data, nil
}

// Decode drops null entries and fills in missing sequences.
func Decode(data []byte) ([]model.Progression, error) {
	var raw []*model.Progression
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode progressions: %w", err)
	}
	res := make([]model.Progression, 0, len(raw))
	for _, p := range raw {
		if p == nil {
			continue
		}
		res = append(res, p.Clone())
	}
	return res, nil
}
