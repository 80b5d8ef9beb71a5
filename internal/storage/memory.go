package storage

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"roomba/internal/sims/roomba"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        []roomba.Summary
	index       map[uuid.UUID]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = nil
	s.index = make(map[uuid.UUID]int)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run roomba.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	if _, ok := s.index[run.RunID]; ok {
		return ErrDuplicateRun
	}
	run.Moves = slices.Clone(run.Moves)
	s.index[run.RunID] = len(s.runs)
	s.runs = append(s.runs, run)
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id uuid.UUID) (roomba.Summary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return roomba.Summary{}, false, nil
	}
	run := s.runs[i]
	run.Moves = slices.Clone(run.Moves)
	return run, true, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]roomba.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]roomba.Summary, len(s.runs))
	for i, run := range s.runs {
		run.Moves = slices.Clone(run.Moves)
		out[i] = run
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
