package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shard-keeper/internal/config"
	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/utils"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// Peer message routes. Every peer replica serves the same surface, so one
// route table covers all of them.
const (
	routeSync          = "/api/peer/sync"
	routePaired        = "/api/peer/paired"
	routeDeviceRemoved = "/api/peer/device-removed"
	routeShareRequest  = "/api/peer/share-request"
	routeShareGrant    = "/api/peer/share-grant"
)

type peer struct {
	baseURL string
	client  *utils.HTTPClient
}

// httpPeerMessenger is the HTTP/REST implementation of [PeerMessenger]. Every
// broadcast is best-effort fan-out: an unreachable peer is logged and skipped,
// never fatal. Offline devices are the normal case here — the replicated
// document re-converges on the next successful exchange.
type httpPeerMessenger struct {
	localID models.DeviceID
	peers   []peer
	logger  *logger.Logger
}

// NewHTTPPeerMessenger constructs a [PeerMessenger] that POSTs envelopes to
// each configured peer address. Returns an error if any address cannot be
// parsed as a valid URL.
func NewHTTPPeerMessenger(cfg config.Peers, localID models.DeviceID, log *logger.Logger) (PeerMessenger, error) {
	peers := make([]peer, 0, len(cfg.Addresses))
	for _, address := range cfg.Addresses {
		baseURL, err := normalizeBaseURL(address)
		if err != nil {
			return nil, fmt.Errorf("invalid peer address %q: %w", address, err)
		}

		client := utils.NewHTTPClient()
		client.
			SetBaseURL(baseURL).
			SetTimeout(cfg.RequestTimeout)

		peers = append(peers, peer{baseURL: baseURL, client: client})
	}

	return &httpPeerMessenger{localID: localID, peers: peers, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BroadcastSyncUpdate implements [PeerMessenger].
func (h *httpPeerMessenger) BroadcastSyncUpdate(ctx context.Context, state models.SyncData) error {
	h.fanOut(ctx, routeSync, models.Envelope{
		Kind:   models.MessageSyncUpdate,
		Sender: h.localID,
		State:  &state,
	})
	return nil
}

// BroadcastDeviceRemoved implements [PeerMessenger].
func (h *httpPeerMessenger) BroadcastDeviceRemoved(ctx context.Context, id models.DeviceID) error {
	h.fanOut(ctx, routeDeviceRemoved, models.Envelope{
		Kind:     models.MessageDeviceRemoved,
		Sender:   h.localID,
		DeviceID: id,
	})
	return nil
}

// BroadcastShareRequest implements [PeerMessenger].
func (h *httpPeerMessenger) BroadcastShareRequest(ctx context.Context, groupID models.GroupID) error {
	h.fanOut(ctx, routeShareRequest, models.Envelope{
		Kind:    models.MessageShareRequested,
		Sender:  h.localID,
		GroupID: &groupID,
	})
	return nil
}

// BroadcastShareGrant implements [PeerMessenger].
func (h *httpPeerMessenger) BroadcastShareGrant(ctx context.Context, groupID models.GroupID, share models.Share) error {
	h.fanOut(ctx, routeShareGrant, models.Envelope{
		Kind:    models.MessageShareGranted,
		Sender:  h.localID,
		GroupID: &groupID,
		Share:   &share,
	})
	return nil
}

// BroadcastPairedWith implements [PeerMessenger].
func (h *httpPeerMessenger) BroadcastPairedWith(ctx context.Context, state models.SyncData) error {
	h.fanOut(ctx, routePaired, models.Envelope{
		Kind:   models.MessagePairedWith,
		Sender: h.localID,
		State:  &state,
	})
	return nil
}

func (h *httpPeerMessenger) fanOut(ctx context.Context, route string, envelope models.Envelope) {
	for _, p := range h.peers {
		resp, err := p.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(envelope).
			Post(route)
		if err != nil {
			h.logger.Warn().
				Err(err).
				Str("peer", p.baseURL).
				Str("kind", string(envelope.Kind)).
				Msg("peer unreachable, skipping")
			continue
		}
		if err = mapHTTPError(resp); err != nil {
			h.logger.Warn().
				Err(err).
				Str("peer", p.baseURL).
				Str("kind", string(envelope.Kind)).
				Msg("peer rejected envelope")
		}
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
