package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
)

// PublicService reads the unauthenticated endpoints: the public kost profile,
// the public room listing and the health probe.
type PublicService struct {
	client *resty.Client
}

// NewPublicService creates a PublicService for the given base URL. A zero
// timeout defaults to 30 seconds.
func NewPublicService(baseURL string, timeout time.Duration) *PublicService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &PublicService{client: client}
}

func (s *PublicService) get(ctx context.Context, path string, result any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if resp.IsError() {
		return shared.NewStatusError(resp.StatusCode(), resp.String())
	}
	return nil
}

// Kost retrieves the public kost profile.
func (s *PublicService) Kost(ctx context.Context) (*models.PublicKost, error) {
	var kost models.PublicKost
	if err := s.get(ctx, "/api/public/kost", &kost); err != nil {
		return nil, err
	}
	return &kost, nil
}

// Rooms retrieves the public room listing.
func (s *PublicService) Rooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.get(ctx, "/api/public/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Health probes the backend health endpoint.
func (s *PublicService) Health(ctx context.Context) (*models.Health, error) {
	var health models.Health
	if err := s.get(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}
