package resume

import (
	"context"
	"encoding/json"

	"github.com/antoinepurnelle/resume-companion/internal/failure"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// GetResume returns the session resume, fetching and mapping it on first
// access. The cache slot is guarded by a mutex held across the fetch, so two
// concurrent first accesses cannot race into duplicate fetches or lost
// updates. Nothing is cached on failure or cancellation.
func (c *Client) GetResume(ctx context.Context) (*Resume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	mapped, err := c.fetchResume(ctx)
	if err != nil {
		return nil, err
	}

	c.cached = mapped

	return mapped, nil
}

// ExperienceByID looks up an experience by exact id, fetching the resume
// first when the session cache is still empty. A fetch or mapping failure is
// propagated unchanged; a miss on a valid resume reports Unknown.
func (c *Client) ExperienceByID(ctx context.Context, id string) (*Experience, error) {
	mapped, err := c.GetResume(ctx)
	if err != nil {
		return nil, err
	}

	if experience := mapped.ExperienceByID(id); experience != nil {
		return experience, nil
	}

	c.logger.Debug("experience not found", zap.String("id", id))

	return nil, failure.New(failure.Unknown)
}

func (c *Client) fetchResume(ctx context.Context) (*Resume, error) {
	resp, err := c.fetch(ctx)
	if err != nil {
		return nil, failure.FromTransport(err)
	}
	defer resp.Body.Close()

	if ferr := failure.FromStatus(resp.StatusCode); ferr != nil {
		c.logger.Debug("resume backend returned error status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, ferr
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, failure.FromTransport(err)
	}

	var doc document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, failure.FromTransport(err)
	}

	mapped, err := transform(&doc)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("mapped resume document",
		zap.String("name", mapped.MainInfo.Name),
		zap.Int("experiences", len(mapped.Experiences)),
		zap.Int("projects", len(mapped.Projects)),
	)

	return mapped, nil
}
