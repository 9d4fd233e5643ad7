// internal/service/media/deliverables.go
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// DeliverablesResult is the payload served to the dashboard. Source is
// set to "fallback-sample" when the upstream could not be reached and
// the bundled sample was substituted.
type DeliverablesResult struct {
	Deliverables []any  `json:"deliverables"`
	GUID         string `json:"guid"`
	Source       string `json:"source,omitempty"`
	UpstreamErr  string `json:"error,omitempty"`
}

// MediaService proxies creative deliverables and remote images for the
// dashboard UI.
type MediaService struct {
	client       *http.Client
	baseURL      string
	superToken   string
	fallbackPath string
	logger       *zap.Logger
}

func NewMediaService(baseURL, superToken, fallbackPath string, logger *zap.Logger) *MediaService {
	return &MediaService{
		client:       &http.Client{Timeout: 15 * time.Second},
		baseURL:      baseURL,
		superToken:   superToken,
		fallbackPath: fallbackPath,
		logger:       logger,
	}
}

// Deliverables fetches a customer's deliverables from the upstream
// creative service. Upstream failures fall back to the bundled sample so
// the UI still renders something.
func (s *MediaService) Deliverables(ctx context.Context, guid string) (*DeliverablesResult, error) {
	if s.superToken == "" {
		return nil, fmt.Errorf("deliverables super token is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+guid, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build deliverables request: %w", err)
	}
	req.Header.Set("x-super-token", s.superToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("deliverables upstream unreachable", zap.String("guid", guid), zap.Error(err))
		return s.fallback(guid, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Warn("deliverables upstream error",
			zap.String("guid", guid),
			zap.Int("status", resp.StatusCode),
		)
		return s.fallback(guid, string(body))
	}

	var payload struct {
		Deliverables []any `json:"deliverables"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return s.fallback(guid, err.Error())
	}

	if payload.Deliverables == nil {
		payload.Deliverables = []any{}
	}
	return &DeliverablesResult{Deliverables: payload.Deliverables, GUID: guid}, nil
}

// fallback serves the bundled sample deliverables.
func (s *MediaService) fallback(guid, upstreamErr string) (*DeliverablesResult, error) {
	raw, err := os.ReadFile(s.fallbackPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback data: %w", err)
	}

	var sample struct {
		Deliverables []any `json:"deliverables"`
	}
	if err := json.Unmarshal(raw, &sample); err != nil {
		return nil, fmt.Errorf("failed to parse fallback data: %w", err)
	}
	if sample.Deliverables == nil {
		sample.Deliverables = []any{}
	}

	return &DeliverablesResult{
		Deliverables: sample.Deliverables,
		GUID:         guid,
		Source:       "fallback-sample",
		UpstreamErr:  upstreamErr,
	}, nil
}

// FetchImage proxies a remote image, preserving its content type.
func (s *MediaService) FetchImage(ctx context.Context, url string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, fmt.Errorf("upstream %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read image body: %w", err)
	}

	return contentType, body, nil
}
