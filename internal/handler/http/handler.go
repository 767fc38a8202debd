package http

import (
	"time"

	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/service"
)

type Handler struct {
	services *service.Services

	// hideInternalErrors replaces 500 bodies with a generic message.
	hideInternalErrors bool
	requestTimeout     time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		hideInternalErrors: cfg.HideInternalErrors,
		requestTimeout:     cfg.RequestTimeout,
		logger:             logger,
	}
}
