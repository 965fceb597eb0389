package client

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
)

// newTestClient builds a client without contacting the gateway endpoint.
func newTestClient(t *testing.T, apiURL string, handlers Handlers) *Client {
	t.Helper()
	c := &Client{
		token:      "test-token",
		apiURL:     apiURL,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
		handlers:   handlers,
	}
	c.sequence.Store(-1)
	c.lastHeartbeatAcked.Store(true)
	return c
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
