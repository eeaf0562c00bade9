package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinema-salles/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(n int) *int { return &n }

func seedSalles(t *testing.T, svc SalleService, capacities ...int) {
	t.Helper()
	for i, capacity := range capacities {
		_, err := svc.CreateSalle(context.Background(), &request.SalleRequest{
			Name:        fmt.Sprintf("Salle %d", i+1),
			Description: "desc",
			Type:        "standard",
			Capacity:    intPtr(capacity),
		})
		require.NoError(t, err)
	}
}

func TestSalleService_CreateThenGet(t *testing.T) {
	svc := NewSalleService(newFakeSalleRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateSalle(ctx, &request.SalleRequest{
		Name: "A", Description: "d", Type: "VIP", Capacity: intPtr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetSalleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Equal(t, "VIP", got.Type)
	assert.Equal(t, 20, got.Capacity)
}

func TestSalleService_CreateCapacityBounds(t *testing.T) {
	svc := NewSalleService(newFakeSalleRepo(), zap.NewNop())

	for _, tc := range []struct {
		capacity int
		ok       bool
	}{{14, false}, {15, true}, {30, true}, {31, false}} {
		_, err := svc.CreateSalle(context.Background(), &request.SalleRequest{
			Name: "A", Description: "d", Type: "VIP", Capacity: intPtr(tc.capacity),
		})
		if tc.ok {
			assert.NoError(t, err, "capacity %d", tc.capacity)
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "capacity %d", tc.capacity)
		assert.Equal(t, "capacity", verr.Errors[0].Field)
	}
}

func TestSalleService_ListPaginatesAndCounts(t *testing.T) {
	svc := NewSalleService(newFakeSalleRepo(), zap.NewNop())
	seedSalles(t, svc, 15, 16, 17, 18, 19)

	page, err := svc.ListSalles(context.Background(), request.PageRequest{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalCount)
	require.Len(t, page.Salles, 2)
	assert.Equal(t, int64(3), page.Salles[0].ID)
	assert.Equal(t, int64(4), page.Salles[1].ID)

	last, err := svc.ListSalles(context.Background(), request.PageRequest{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, last.Salles)
	assert.Equal(t, int64(5), last.TotalCount)
}

func TestSalleService_ListFiltersByCapacity(t *testing.T) {
	svc := NewSalleService(newFakeSalleRepo(), zap.NewNop())
	seedSalles(t, svc, 15, 25, 20, 30)

	page, err := svc.ListSalles(context.Background(), request.PageRequest{Page: 1, Limit: 1, Max: intPtr(20)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Salles, 1)
	for _, salle := range page.Salles {
		assert.LessOrEqual(t, salle.Capacity, 20)
	}
}

func TestSalleService_UpdateCapacity(t *testing.T) {
	repo := newFakeSalleRepo()
	svc := NewSalleService(repo, zap.NewNop())
	seedSalles(t, svc, 20)

	updated, err := svc.UpdateSalle(context.Background(), &request.SalleUpdateRequest{ID: 1, Capacity: intPtr(25)})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Capacity)
	assert.Equal(t, 25, repo.rows[1].Capacity)
	assert.Equal(t, 1, repo.updates)
}

func TestSalleService_UpdateWithoutCapacityIsNoop(t *testing.T) {
	repo := newFakeSalleRepo()
	svc := NewSalleService(repo, zap.NewNop())
	seedSalles(t, svc, 20)

	got, err := svc.UpdateSalle(context.Background(), &request.SalleUpdateRequest{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 20, got.Capacity)
	assert.Zero(t, repo.updates)
}

func TestSalleService_UpdateRejectsNonPositiveCapacity(t *testing.T) {
	repo := newFakeSalleRepo()
	svc := NewSalleService(repo, zap.NewNop())
	seedSalles(t, svc, 20)

	_, err := svc.UpdateSalle(context.Background(), &request.SalleUpdateRequest{ID: 1, Capacity: intPtr(0)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 20, repo.rows[1].Capacity)
}

func TestSalleService_UpdateNotFound(t *testing.T) {
	repo := newFakeSalleRepo()
	svc := NewSalleService(repo, zap.NewNop())
	seedSalles(t, svc, 20)

	_, err := svc.UpdateSalle(context.Background(), &request.SalleUpdateRequest{ID: 99, Capacity: intPtr(22)})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "salle 99 not found", err.Error())
	assert.Zero(t, repo.updates)
	assert.Len(t, repo.rows, 1)
}

func TestSalleService_DeleteThenGet(t *testing.T) {
	svc := NewSalleService(newFakeSalleRepo(), zap.NewNop())
	seedSalles(t, svc, 20)

	deleted, err := svc.DeleteSalle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.ID)

	_, err = svc.GetSalleByID(context.Background(), 1)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	_, err = svc.DeleteSalle(context.Background(), 1)
	require.ErrorAs(t, err, &nf)
}

func TestSalleService_StorageFailureIsWrapped(t *testing.T) {
	repo := newFakeSalleRepo()
	repo.err = errStorage
	svc := NewSalleService(repo, zap.NewNop())

	_, err := svc.ListSalles(context.Background(), request.PageRequest{Page: 1, Limit: 20})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errStorage))

	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
}
