package storage

import (
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"photobooth/internal/models"
	"photobooth/internal/providers"
	"photobooth/internal/storage/interfaces"
)

var ErrUnknownFormat = errors.New("unrecognized persistence file format")

type FileManager struct {
	store      interfaces.StoreInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store interfaces.StoreInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

// SaveToFile writes the store snapshot to fileName via a synced temp file and
// a rename, so a crash leaves either the old or the new file.
func (f *FileManager) SaveToFile(fileName string) error {
	jsonData, err := json.Marshal(f.store.Snapshot())
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores the store. A missing file is not an error. Besides
// the compressed v1 envelope it accepts a plain JSON export of the browser
// booth's local storage and migrates it.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	payload, err := f.compressor.Decompress(data)
	if err != nil {
		payload = data
	}

	var storage models.StorageV1
	if err := json.Unmarshal(payload, &storage); err == nil && storage.Version == StorageVersion {
		f.store.Replace(&storage)
		return nil
	}

	f.logger.Warnf(providers.TypeApp, "Persistence file %s is not a v%d envelope, trying browser storage export", fileName, StorageVersion)
	migrated, err := migrateLegacy(payload)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed: %s", err)
		return fmt.Errorf("load %s: %w", fileName, err)
	}
	f.logger.Warnf(providers.TypeApp, "Migration from browser storage successful: %d sessions, %d history records",
		len(migrated.Sessions), len(migrated.History))
	f.store.Replace(migrated)
	return nil
}
