package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shard-keeper/internal/logger"
	"github.com/MKhiriev/go-shard-keeper/internal/mock"
	"github.com/MKhiriev/go-shard-keeper/internal/service"
	"github.com/MKhiriev/go-shard-keeper/models"
)

// stubInbox records delivered envelopes and returns a preset error.
type stubInbox struct {
	envelopes []models.Envelope
	err       error
}

func (s *stubInbox) HandleEnvelope(_ context.Context, envelope models.Envelope) error {
	s.envelopes = append(s.envelopes, envelope)
	return s.err
}

func newTestServer(t *testing.T, inbox service.PeerInbox) *httptest.Server {
	t.Helper()
	handler := NewHandler(inbox, "1.2.3", logger.Nop())
	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)
	return server
}

func postEnvelope(t *testing.T, server *httptest.Server, route string, envelope models.Envelope) *http.Response {
	t.Helper()
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+route, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandlePeerMessage_RouteDeterminesKind(t *testing.T) {
	state := models.NewSyncData()

	tests := []struct {
		route string
		kind  models.MessageKind
	}{
		{"/api/peer/sync", models.MessageSyncUpdate},
		{"/api/peer/paired", models.MessagePairedWith},
		{"/api/peer/device-removed", models.MessageDeviceRemoved},
		{"/api/peer/share-request", models.MessageShareRequested},
		{"/api/peer/share-grant", models.MessageShareGranted},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			inbox := &stubInbox{}
			server := newTestServer(t, inbox)

			// The body claims a different kind; the route must win.
			resp := postEnvelope(t, server, tt.route, models.Envelope{
				Kind:   "spoofed",
				Sender: "device-b",
				State:  &state,
			})

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			require.Len(t, inbox.envelopes, 1)
			assert.Equal(t, tt.kind, inbox.envelopes[0].Kind)
			assert.Equal(t, models.DeviceID("device-b"), inbox.envelopes[0].Sender)
		})
	}
}

func TestHandlePeerMessage_InvalidJSON(t *testing.T) {
	inbox := &stubInbox{}
	server := newTestServer(t, inbox)

	resp, err := http.Post(server.URL+"/api/peer/sync", "application/json", bytes.NewBufferString("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, inbox.envelopes)
}

func TestHandlePeerMessage_MissingSender(t *testing.T) {
	inbox := &stubInbox{}
	server := newTestServer(t, inbox)

	resp := postEnvelope(t, server, "/api/peer/sync", models.Envelope{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, inbox.envelopes)
}

func TestHandlePeerMessage_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"malformed envelope", service.ErrMalformedEnvelope, http.StatusBadRequest},
		{"unknown group", service.ErrGroupNotFound, http.StatusNotFound},
		{"burned device id", models.ErrDeviceIDBurned, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, &stubInbox{err: tt.err})

			resp := postEnvelope(t, server, "/api/peer/share-grant", models.Envelope{Sender: "device-b"})
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandlePeerMessage_DeliversShareGrantToInbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := models.GroupID{Threshold: 2, Discriminator: "g1"}
	share := models.Share{X: 3, Ys: []byte{0xaa, 0xbb}}

	inbox := mock.NewMockPeerInbox(ctrl)
	inbox.EXPECT().
		HandleEnvelope(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, envelope models.Envelope) error {
			assert.Equal(t, models.MessageShareGranted, envelope.Kind)
			assert.Equal(t, models.DeviceID("device-b"), envelope.Sender)
			require.NotNil(t, envelope.GroupID)
			assert.Equal(t, groupID, *envelope.GroupID)
			require.NotNil(t, envelope.Share)
			assert.Equal(t, share, *envelope.Share)
			return nil
		})

	server := newTestServer(t, inbox)

	resp := postEnvelope(t, server, "/api/peer/share-grant", models.Envelope{
		Sender:  "device-b",
		GroupID: &groupID,
		Share:   &share,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAppVersion(t *testing.T) {
	server := newTestServer(t, &stubInbox{})

	resp, err := http.Get(server.URL + "/api/version/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload versionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "1.2.3", payload.Version)
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	server := newTestServer(t, &stubInbox{})

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/version/", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}
