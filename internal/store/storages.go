package store

import (
	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
)

// Storages bundles every persistence component handed to the service layer.
type Storages struct {
	UserRepository         UserRepository
	MatchRequestRepository MatchRequestRepository
	ImageStorage           ImageStorage
}

func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	imageStorage, err := NewProfileImageFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		MatchRequestRepository: NewMatchRequestRepository(db, logger),
		ImageStorage:           imageStorage,
	}, nil
}
