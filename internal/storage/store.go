package storage

import (
	"photobooth/internal/models"
	"photobooth/internal/storage/interfaces"
	"photobooth/internal/structures"
	"sync"
)

const (
	StorageVersion     = 1
	DefaultMaxSessions = 10
	DefaultMaxHistory  = 50
)

type Store struct {
	mu          sync.RWMutex
	settings    *models.Settings
	sessions    []models.SessionRecord
	history     []models.HistoryRecord
	maxSessions int
	maxHistory  int
	revision    uint64
}

func NewStore(conf *structures.Config) interfaces.StoreInterface {
	maxSessions := conf.Persistence.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	maxHistory := conf.Persistence.MaxHistory
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Store{
		sessions:    []models.SessionRecord{},
		history:     []models.HistoryRecord{},
		maxSessions: maxSessions,
		maxHistory:  maxHistory,
	}
}

func (s *Store) SaveSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	s.revision++
}

func (s *Store) LoadSettings() (models.Settings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return models.Settings{}, false
	}
	return *s.settings, true
}

func (s *Store) AppendSessionRecord(r models.SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = prepend(s.sessions, r, s.maxSessions)
	s.revision++
}

func (s *Store) Sessions() []models.SessionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SessionRecord(nil), s.sessions...)
}

func (s *Store) AppendHistoryRecord(r models.HistoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = prepend(s.history, r, s.maxHistory)
	s.revision++
}

func (s *Store) History() []models.HistoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HistoryRecord(nil), s.history...)
}

func (s *Store) Snapshot() *models.StorageV1 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := &models.StorageV1{
		Version:  StorageVersion,
		Sessions: append([]models.SessionRecord{}, s.sessions...),
		History:  append([]models.HistoryRecord{}, s.history...),
	}
	if s.settings != nil {
		settings := *s.settings
		snap.Settings = &settings
	}
	return snap
}

// Replace installs restored state, trimming lists to the configured bounds.
func (s *Store) Replace(snap *models.StorageV1) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = nil
	if snap.Settings != nil {
		settings := *snap.Settings
		s.settings = &settings
	}
	s.sessions = truncate(append([]models.SessionRecord{}, snap.Sessions...), s.maxSessions)
	s.history = truncate(append([]models.HistoryRecord{}, snap.History...), s.maxHistory)
	s.revision++
}

func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func prepend[T any](list []T, item T, limit int) []T {
	out := make([]T, 0, min(len(list)+1, limit))
	out = append(out, item)
	out = append(out, list...)
	return truncate(out, limit)
}

func truncate[T any](list []T, limit int) []T {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
