// Package resume talks to the résumé content backend and turns its loosely
// typed wire documents into validated domain resumes.
package resume

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	userAgent   = "antoinepurnelle/resume-companion"
	contentType = "application/json"

	connectTimeout = 10 * time.Second
	requestTimeout = 30 * time.Second
)

// Client is the résumé data gateway. It is a long-lived singleton: the first
// successful fetch is kept for the rest of the session and served from
// memory afterwards.
type Client struct {
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	// DocumentURL points at the full backend document, e.g. a jsonbin.io
	// bin "latest" endpoint.
	DocumentURL string

	mu     sync.Mutex
	cached *Resume
}

// New creates a client for the given backend document. The key is attached
// to every request as the backend's master-key header.
func New(logger *zap.Logger, documentURL, apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		logger:      logger,
		DocumentURL: documentURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		UserAgent: userAgent,
	}
}

func (c *Client) fetch(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DocumentURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Master-Key", c.apiKey)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("fetching resume document", zap.String("url", req.URL.String()))

	return c.HTTPClient.Do(req)
}
