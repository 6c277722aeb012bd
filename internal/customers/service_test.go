package customers

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
	customers map[int64]Customer
	nextID    int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{customers: make(map[int64]Customer)}
}

// List mirrors the SQL contract: full_name ascending, id as tiebreak.
func (r *memoryRepo) List(ctx context.Context) ([]Customer, error) {
	out := make([]Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return Customer{}, httpx.ErrNotFound
	}
	return c, nil
}

func (r *memoryRepo) Create(ctx context.Context, c Customer) (Customer, error) {
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = c
	return c, nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, c Customer) error {
	if _, ok := r.customers[id]; !ok {
		return httpx.ErrNotFound
	}
	c.ID = id
	r.customers[id] = c
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func newTestService() (*Service, *memoryRepo) {
	repo := newMemoryRepo()
	return NewService(repo, fixedClock{t: testNow}), repo
}

func TestServiceCreateValidatesBeforeInsert(t *testing.T) {
	svc, repo := newTestService()

	raw := validRaw()
	raw["tax_id"] = "111.444.777-36"

	_, err := svc.Create(context.Background(), raw)
	var vErr *schema.Error
	require.ErrorAs(t, err, &vErr)
	require.Empty(t, repo.customers)
}

func TestServiceCreateNormalizes(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRaw())
	require.NoError(t, err)
	require.Equal(t, "SP", created.State)
	require.Equal(t, "(19) 99876-5432", created.Phone)
}

func TestServiceListOrderedByName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := validRaw()
	second := validRaw()
	second["full_name"] = "Carlos Pereira"

	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Carlos Pereira", list[0].FullName)
	require.Equal(t, "Maria da Silva", list[1].FullName)
}

func TestServiceUpdateMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), 99, validRaw())
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 99)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}
