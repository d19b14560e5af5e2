package http

import (
	"net/http"

	"github.com/MKhiriev/go-shard-keeper/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) appVersion(w http.ResponseWriter, r *http.Request) {
	version := h.version
	if version == "" {
		version = "N/A"
	}

	utils.WriteJSON(w, versionResponse{Version: version}, http.StatusOK)
}
