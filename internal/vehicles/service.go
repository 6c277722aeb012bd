package vehicles

import (
	"context"

	"github.com/autolote/autolote/internal/platform/httpx"
	"github.com/autolote/autolote/internal/schema"
	"github.com/autolote/autolote/internal/shared"
)

// Service validates raw vehicle records against the shared rule table
// and persists them. The clock is read once per validation call so
// every date window in one request sees the same "now".
type Service struct {
	repo   Repository
	clock  shared.Clock
	schema *schema.Schema
}

func NewService(repo Repository, clock shared.Clock) *Service {
	return &Service{repo: repo, clock: clock, schema: newSchema()}
}

func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Vehicle, error) {
	if id <= 0 {
		return Vehicle{}, httpx.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, raw map[string]any) (Vehicle, error) {
	rec, err := s.schema.Validate(raw, s.clock.Now())
	if err != nil {
		return Vehicle{}, err
	}
	return s.repo.Create(ctx, fromRecord(rec))
}

func (s *Service) Update(ctx context.Context, id int64, raw map[string]any) error {
	if id <= 0 {
		return httpx.ErrNotFound
	}
	rec, err := s.schema.Validate(raw, s.clock.Now())
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fromRecord(rec))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return httpx.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
