// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

// MemoryPath makes [NewFileStorage] keep everything in memory.
const MemoryPath = ":memory:"

// FileStorage is a JSON-file backed [KeyRepository] and
// [DecisionRepository]. The whole state is rewritten on every mutation, so
// it suits a single terminal client, not a busy server.
type FileStorage struct {
	path     string
	inMemory bool

	mu        sync.RWMutex
	keys      map[string]models.KeyTriple
	decisions []models.DecisionRecord
}

type filePersistedState struct {
	Keys      map[string]models.KeyTriple `json:"keys"`
	Decisions []models.DecisionRecord     `json:"decisions,omitempty"`
}

// NewFileStorage loads the state stored at path. A missing file is an empty
// state; an empty path or [MemoryPath] never touches the disk.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		path = MemoryPath
	}

	s := &FileStorage{
		path:     path,
		inMemory: path == MemoryPath,
		keys:     make(map[string]models.KeyTriple),
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}

	if st.Keys != nil {
		s.keys = st.Keys
	}
	s.decisions = st.Decisions

	return nil
}

// persist must be called with mu held for writing.
func (s *FileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Keys: s.keys, Decisions: s.decisions}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}

func (s *FileStorage) LoadKeys(_ context.Context, id string) (models.KeyTriple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys, ok := s.keys[id]
	if !ok {
		return models.KeyTriple{}, ErrKeysNotFound
	}

	return keys, nil
}

func (s *FileStorage) SaveKeys(_ context.Context, id string, keys models.KeyTriple) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.keys[id]
	s.keys[id] = keys
	if err := s.persist(); err != nil {
		if existed {
			s.keys[id] = previous
		} else {
			delete(s.keys, id)
		}
		return fmt.Errorf("%w: %w", ErrKeysNotSaved, err)
	}

	return nil
}

func (s *FileStorage) DeleteKeys(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.keys[id]
	if !existed {
		return nil
	}

	delete(s.keys, id)
	if err := s.persist(); err != nil {
		s.keys[id] = previous
		return err
	}

	return nil
}

func (s *FileStorage) SaveDecision(_ context.Context, record models.DecisionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.decisions {
		if existing.ID == record.ID {
			return fmt.Errorf("%w: duplicate id %s", ErrDecisionNotSaved, record.ID)
		}
	}

	s.decisions = append(s.decisions, record)
	if err := s.persist(); err != nil {
		s.decisions = s.decisions[:len(s.decisions)-1]
		return fmt.Errorf("%w: %w", ErrDecisionNotSaved, err)
	}

	return nil
}

func (s *FileStorage) ListDecisions(_ context.Context, limit uint64) ([]models.DecisionRecord, error) {
	s.mu.RLock()
	records := slices.Clone(s.decisions)
	s.mu.RUnlock()

	slices.SortStableFunc(records, func(a, b models.DecisionRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	if limit > 0 && uint64(len(records)) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (s *FileStorage) PruneDecisions(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.DecisionRecord, 0, len(s.decisions))
	for _, record := range s.decisions {
		if !record.CreatedAt.Before(before) {
			kept = append(kept, record)
		}
	}

	removed := int64(len(s.decisions) - len(kept))
	if removed == 0 {
		return 0, nil
	}

	previous := s.decisions
	s.decisions = kept
	if err := s.persist(); err != nil {
		s.decisions = previous
		return 0, err
	}

	return removed, nil
}
