package storage

import (
	"fmt"
	"photobooth/internal/models"
	"photobooth/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeConfig(maxSessions, maxHistory int) *structures.Config {
	return &structures.Config{
		Persistence: structures.Persistence{MaxSessions: maxSessions, MaxHistory: maxHistory},
	}
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	s := NewStore(storeConfig(0, 0))

	_, ok := s.LoadSettings()
	assert.False(t, ok)

	in := models.Settings{TotalPhotos: 6, TimerSeconds: 5, Layout: models.Layout3x3, MirrorMode: "mirror"}
	s.SaveSettings(in)

	out, ok := s.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestStore_SessionRecordsNewestFirstMaxTen(t *testing.T) {
	s := NewStore(storeConfig(0, 0))
	for i := 0; i < 12; i++ {
		s.AppendSessionRecord(models.SessionRecord{ID: fmt.Sprint(i)})
	}

	records := s.Sessions()
	require.Len(t, records, DefaultMaxSessions)
	assert.Equal(t, "11", records[0].ID)
	assert.Equal(t, "2", records[9].ID)
}

func TestStore_HistoryBounded(t *testing.T) {
	s := NewStore(storeConfig(0, 3))
	for i := 0; i < 5; i++ {
		s.AppendHistoryRecord(models.HistoryRecord{ID: fmt.Sprint(i)})
	}

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, []string{"4", "3", "2"}, []string{history[0].ID, history[1].ID, history[2].ID})
}

func TestStore_ReturnedSlicesAreCopies(t *testing.T) {
	s := NewStore(storeConfig(0, 0))
	s.AppendHistoryRecord(models.HistoryRecord{ID: "a"})

	h := s.History()
	h[0].ID = "mutated"
	assert.Equal(t, "a", s.History()[0].ID)
}

func TestStore_SnapshotReplace(t *testing.T) {
	s := NewStore(storeConfig(2, 2))
	s.SaveSettings(models.Settings{TotalPhotos: 2})
	s.AppendHistoryRecord(models.HistoryRecord{ID: "h"})

	snap := s.Snapshot()
	assert.Equal(t, StorageVersion, snap.Version)
	require.NotNil(t, snap.Settings)
	assert.Equal(t, 2, snap.Settings.TotalPhotos)

	other := NewStore(storeConfig(2, 2))
	other.Replace(&models.StorageV1{
		Version:  StorageVersion,
		Settings: snap.Settings,
		Sessions: []models.SessionRecord{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		History:  snap.History,
	})
	assert.Len(t, other.Sessions(), 2)
	assert.Len(t, other.History(), 1)
	got, ok := other.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalPhotos)
}

func TestStore_RevisionMovesOnWrites(t *testing.T) {
	s := NewStore(storeConfig(0, 0))
	r0 := s.Revision()
	s.SaveSettings(models.Settings{})
	r1 := s.Revision()
	s.AppendSessionRecord(models.SessionRecord{})
	r2 := s.Revision()
	_ = s.History()

	assert.Greater(t, r1, r0)
	assert.Greater(t, r2, r1)
	assert.Equal(t, r2, s.Revision())
}
