// Package gemini implements the resume assistant on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash-lite"

	// Generative responses are slow; the request budget is deliberately
	// wide compared to the resume backend.
	connectTimeout  = 60 * time.Second
	generateTimeout = 180 * time.Second
)

type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client for single-shot content requests.
type Generator struct {
	models modelCaller
	model  string
	logger *zap.Logger
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, logger *zap.Logger, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: generateTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{models: client.Models, model: model, logger: logger}, nil
}

// Generate sends the parts as a single user turn and returns the raw
// response envelope. Classification of errors is left to the caller.
func (g *Generator) Generate(ctx context.Context, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	if g == nil || g.models == nil {
		return nil, errors.New("gemini generator is not initialized")
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: parts,
	}}

	g.logger.Debug("gemini generate content request",
		zap.String("model", g.model),
		zap.Int("parts", len(parts)),
	)

	return g.models.GenerateContent(ctx, g.model, contents, nil)
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
