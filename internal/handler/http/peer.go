// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/models"
)

func (h *Handler) syncUpdate(w http.ResponseWriter, r *http.Request) {
	h.handlePeerMessage(w, r, models.MessageSyncUpdate)
}

func (h *Handler) pairedWith(w http.ResponseWriter, r *http.Request) {
	h.handlePeerMessage(w, r, models.MessagePairedWith)
}

func (h *Handler) deviceRemoved(w http.ResponseWriter, r *http.Request) {
	h.handlePeerMessage(w, r, models.MessageDeviceRemoved)
}

func (h *Handler) shareRequest(w http.ResponseWriter, r *http.Request) {
	h.handlePeerMessage(w, r, models.MessageShareRequested)
}

func (h *Handler) shareGrant(w http.ResponseWriter, r *http.Request) {
	h.handlePeerMessage(w, r, models.MessageShareGranted)
}

// handlePeerMessage decodes the envelope, pins its kind to the route it
// arrived on, and hands it to the inbox. The route wins over whatever kind
// the sender wrote into the body.
func (h *Handler) handlePeerMessage(w http.ResponseWriter, r *http.Request, kind models.MessageKind) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var envelope models.Envelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		log.Err(err).Str("func", "*Handler.handlePeerMessage").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	envelope.Kind = kind

	if envelope.Sender == "" {
		log.Error().Str("func", "*Handler.handlePeerMessage").Msg("envelope without sender")
		http.Error(w, "envelope without sender", http.StatusBadRequest)
		return
	}

	if err := h.inbox.HandleEnvelope(ctx, envelope); err != nil {
		log.Err(err).
			Str("func", "*Handler.handlePeerMessage").
			Str("kind", string(kind)).
			Msg("error handling peer envelope")
		http.Error(w, "error handling peer envelope", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
