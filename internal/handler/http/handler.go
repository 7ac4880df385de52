package http

import (
	"time"

	"github.com/MKhiriev/mentor-match/internal/config"
	"github.com/MKhiriev/mentor-match/internal/logger"
	"github.com/MKhiriev/mentor-match/internal/service"
	"github.com/MKhiriev/mentor-match/internal/validators"
)

// multipartOverhead is the room left for form fields and part headers on top
// of the image size limit.
const multipartOverhead = 1 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	requestTimeout time.Duration
	maxImageSize   int64
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		requestTimeout: cfg.Server.RequestTimeout,
		maxImageSize:   cfg.Storage.Files.MaxImageSize,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
