package storage

import (
	"errors"
	"os"
	"path/filepath"
	"photobooth/internal/models"
	"photobooth/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileManager(compressor *testutil.MockCompressor) (*FileManager, *Store, *testutil.MockLogger) {
	store := NewStore(storeConfig(0, 0)).(*Store)
	logger := &testutil.MockLogger{}
	return NewFileManager(compressor, store, logger), store, logger
}

func TestFileManager_SaveToFile_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booth.dat")
	fm, store, _ := newTestFileManager(&testutil.MockCompressor{})
	store.SaveSettings(models.Settings{TotalPhotos: 4})

	require.NoError(t, fm.SaveToFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_SaveToFile_CompressError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booth.dat")
	fm, _, _ := newTestFileManager(&testutil.MockCompressor{
		CompressFn: func([]byte) ([]byte, error) { return nil, errors.New("boom") },
	})

	assert.Error(t, fm.SaveToFile(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_SaveToFile_BadDirectory(t *testing.T) {
	fm, _, _ := newTestFileManager(&testutil.MockCompressor{})
	assert.Error(t, fm.SaveToFile(filepath.Join(t.TempDir(), "missing", "booth.dat")))
}

func TestFileManager_RoundTripWithZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booth.dat")
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	defer comp.Close()

	src := NewStore(storeConfig(0, 0))
	src.SaveSettings(models.Settings{TotalPhotos: 9, TimerSeconds: 2, Layout: models.Layout3x3, MirrorMode: "no-mirror"})
	src.AppendSessionRecord(models.SessionRecord{
		ID:     "rec",
		Photos: []models.SavedPhoto{{Index: 0, PNG: []byte{0x89, 'P', 'N', 'G'}}},
	})
	src.AppendHistoryRecord(models.HistoryRecord{ID: "h1", Photos: 9, Quality: models.QualityExcellent})
	require.NoError(t, NewFileManager(comp, src, &testutil.MockLogger{}).SaveToFile(path))

	dst := NewStore(storeConfig(0, 0))
	require.NoError(t, NewFileManager(comp, dst, &testutil.MockLogger{}).LoadFromFile(path))

	settings, ok := dst.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, 9, settings.TotalPhotos)
	assert.Equal(t, models.Layout3x3, settings.Layout)
	require.Len(t, dst.Sessions(), 1)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, dst.Sessions()[0].Photos[0].PNG)
	require.Len(t, dst.History(), 1)
	assert.Equal(t, models.QualityExcellent, dst.History()[0].Quality)
}

func TestFileManager_LoadMissingFileIsNoop(t *testing.T) {
	fm, store, _ := newTestFileManager(&testutil.MockCompressor{})
	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.dat")))
	_, ok := store.LoadSettings()
	assert.False(t, ok)
}

func TestFileManager_LoadGarbageFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booth.dat")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	fm, _, logger := newTestFileManager(&testutil.MockCompressor{})
	err := fm.LoadFromFile(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, 1, logger.Count("warn", "Migration failed"))
}

func TestFileManager_LoadUnknownVersionFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booth.dat")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":7,"sessions":[],"history":[]}`), 0644))

	fm, _, _ := newTestFileManager(&testutil.MockCompressor{})
	assert.ErrorIs(t, fm.LoadFromFile(path), ErrUnknownFormat)
}

func TestFileManager_MigratesBrowserExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	export := `{
		"photoboothSession": "{\"totalPhotos\":6,\"timerSeconds\":5,\"selectedLayout\":\"3x3\",\"selectedFrame\":\"royal\",\"frameColor\":\"#FF0000\",\"lastSession\":\"2025-01-02T03:04:05.000Z\"}",
		"photoboothHistory": [
			{"id": 1735787045000, "date": "2025-01-02T03:04:05.000Z", "photos": 3, "duration": 20,
			 "settings": {"totalPhotos": 4, "timerSeconds": 3, "selectedLayout": "2x2", "selectedFrame": "classic", "frameColor": "#FFD700"}}
		],
		"photoboothSessions": [
			{"id": 1735787045000, "date": "2/1/2025", "totalPhotos": 1, "layout": "single", "frame": "heart", "frameColor": "#FF69B4",
			 "photos": [{"index": 0, "data": "data:image/png;base64,iVBORw0KGgo=", "timestamp": 1735787040000,
			             "frame": {"type": "heart", "color": "#FF69B4", "thickness": 15, "opacity": 100, "style": "solid"}},
			            {"index": 1, "data": "garbage", "timestamp": 1735787041000}]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(export), 0644))

	fm, store, _ := newTestFileManager(&testutil.MockCompressor{
		DecompressFn: func([]byte) ([]byte, error) { return nil, errors.New("not zstd") },
	})
	require.NoError(t, fm.LoadFromFile(path))

	settings, ok := store.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, 6, settings.TotalPhotos)
	assert.Equal(t, models.Layout3x3, settings.Layout)
	assert.Equal(t, "royal", settings.Frame.Type)
	assert.Equal(t, "#FF0000", settings.Frame.Color)
	assert.Equal(t, -1, settings.Frame.Opacity)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), settings.LastSession.UTC())

	history := store.History()
	require.Len(t, history, 1)
	assert.Equal(t, "1735787045000", history[0].ID)
	assert.Equal(t, models.QualityGood, history[0].Quality)
	assert.Equal(t, 20, history[0].DurationSeconds)
	assert.Equal(t, models.Layout2x2, history[0].Settings.Layout)

	sessions := store.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, time.UnixMilli(1735787045000), sessions[0].Date)
	require.Len(t, sessions[0].Photos, 1, "undecodable photo is dropped")
	assert.Equal(t, "heart", sessions[0].Photos[0].Frame.Type)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, sessions[0].Photos[0].PNG)
}
