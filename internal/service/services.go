package service

import (
	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/store"
	"github.com/MKhiriev/mentor-match/models"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	MentorService       MentorService
	MatchRequestService MatchRequestService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:         NewUserService(storages.UserRepository, storages.ImageStorage, cfg.Storage.Files, logger),
		MentorService:       NewMentorService(storages.UserRepository, logger),
		MatchRequestService: NewMatchRequestService(storages.MatchRequestRepository, storages.UserRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}
