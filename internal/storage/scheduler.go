package storage

import (
	"github.com/roylee0704/gron"
	"photobooth/internal/providers"
	"photobooth/internal/storage/interfaces"
	"photobooth/internal/structures"
	"sync"
	"time"
)

// Scheduler flushes the store to disk every persistence.saveInterval when it
// has changed since the last write.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       interfaces.StoreInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
	saved       uint64
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if s.store.Revision() == s.saved {
			return
		}
		if err := s.persistLocked(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	s.saved = s.store.Revision()
	return nil
}

// Persist writes the store now, regardless of whether it changed.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.persistLocked(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) persistLocked() error {
	start := time.Now()
	revision := s.store.Revision()
	if err := s.fileManager.SaveToFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	s.saved = revision
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store interfaces.StoreInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
