package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for talking to peer replicas. Embedding
// exposes the full resty API; the adapter layer configures one client per
// peer (base URL, timeout) on top of it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and configuration. Peers are long-lived, so the adapter creates one of
// these per configured peer address rather than sharing a client.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://phone.local:8080")
//	resp, err := client.R().Post("/api/peer/sync")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
