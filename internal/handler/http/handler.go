package http

import (
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/service"
)

type Handler struct {
	inbox   service.PeerInbox
	version string

	logger *logger.Logger
}

func NewHandler(inbox service.PeerInbox, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		inbox:   inbox,
		version: version,
		logger:  logger,
	}
}
