package vehicles

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/autolote/autolote/internal/platform/httpx"
	"github.com/autolote/autolote/internal/schema"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type memoryRepo struct {
	vehicles map[int64]Vehicle
	nextID   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{vehicles: make(map[int64]Vehicle)}
}

// List mirrors the SQL contract: brand ascending, id as tiebreak.
func (r *memoryRepo) List(ctx context.Context) ([]Vehicle, error) {
	out := make([]Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Brand != out[j].Brand {
			return out[i].Brand < out[j].Brand
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return Vehicle{}, httpx.ErrNotFound
	}
	return v, nil
}

func (r *memoryRepo) Create(ctx context.Context, v Vehicle) (Vehicle, error) {
	r.nextID++
	v.ID = r.nextID
	r.vehicles[v.ID] = v
	return v, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, v Vehicle) error {
	if _, ok := r.vehicles[id]; !ok {
		return httpx.ErrNotFound
	}
	v.ID = id
	r.vehicles[id] = v
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.vehicles[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func newTestService() (*Service, *memoryRepo) {
	repo := newMemoryRepo()
	return NewService(repo, fixedClock{t: testNow}), repo
}

func TestServiceCreateValidatesBeforeInsert(t *testing.T) {
	svc, repo := newTestService()

	raw := validRaw()
	raw["plates"] = "SHORT"

	_, err := svc.Create(context.Background(), raw)
	var vErr *schema.Error
	require.ErrorAs(t, err, &vErr)
	require.Empty(t, repo.vehicles)
}

func TestServiceListOrderedByBrand(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	toyota := validRaw()
	fiat := validRaw()
	fiat["brand"] = "Fiat"
	fiat["plates"] = "FIA1T234"

	_, err := svc.Create(ctx, toyota)
	require.NoError(t, err)
	_, err = svc.Create(ctx, fiat)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Fiat", list[0].Brand)
	require.Equal(t, "Toyota", list[1].Brand)
}

func TestServiceUpdateMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), 99, validRaw())
	require.ErrorIs(t, err, httpx.ErrNotFound)

	err = svc.Update(context.Background(), 0, validRaw())
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceGetMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), 42)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

// A record accepted by Create must re-validate unchanged when fetched
// back, i.e. normalization is stable across the round trip.
func TestServiceRoundTripRevalidates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRaw())
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)

	raw := map[string]any{
		"brand":            fetched.Brand,
		"model":            fetched.Model,
		"color":            fetched.Color,
		"year_manufacture": fetched.YearManufacture,
		"imported":         fetched.Imported,
		"plates":           fetched.Plates,
	}
	if fetched.SellingDate != nil {
		raw["selling_date"] = *fetched.SellingDate
	}
	if fetched.SellingPrice != nil {
		raw["selling_price"] = *fetched.SellingPrice
	}

	rec, err := newSchema().Validate(raw, testNow)
	require.NoError(t, err)
	require.Equal(t, fetched.Color, rec["color"])
	require.Equal(t, fetched.YearManufacture, rec["year_manufacture"])
}
