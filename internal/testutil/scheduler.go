package testutil

import "sync"

// MockScheduler counts Persist calls and optionally fails them.
type MockScheduler struct {
	mu         sync.Mutex
	Inits      int
	Stops      int
	Restores   int
	Persists   int
	RestoreErr error
	PersistErr error
}

func (s *MockScheduler) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Inits++
}

func (s *MockScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stops++
}

func (s *MockScheduler) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Restores++
	return s.RestoreErr
}

func (s *MockScheduler) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Persists++
	return s.PersistErr
}

func (s *MockScheduler) PersistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Persists
}
