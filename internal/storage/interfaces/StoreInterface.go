package interfaces

import "photobooth/internal/models"

// StoreInterface is the persisted state of the booth: the last settings,
// explicitly saved sessions and the completed-session history. Lists are
// newest first.
type StoreInterface interface {
	SaveSettings(s models.Settings)
	LoadSettings() (models.Settings, bool)
	AppendSessionRecord(r models.SessionRecord)
	Sessions() []models.SessionRecord
	AppendHistoryRecord(r models.HistoryRecord)
	History() []models.HistoryRecord
	Snapshot() *models.StorageV1
	Replace(s *models.StorageV1)
	Revision() uint64
}
