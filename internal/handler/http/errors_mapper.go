package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shard-keeper/internal/service"
	"github.com/MKhiriev/go-shard-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrMalformedEnvelope: http.StatusBadRequest,
	service.ErrGroupNotFound:     http.StatusNotFound,
	service.ErrAccountNotFound:   http.StatusNotFound,
	service.ErrDeviceNotFound:    http.StatusNotFound,
	models.ErrDeviceIDBurned:     http.StatusConflict,
	models.ErrDecodeState:        http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
