package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cinema-salles/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var salleColumns = []string{"salle_id", "name", "description", "type", "capacity"}

func newSalleRepo(t *testing.T) (SalleRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewSalleRepository(mock, zap.NewNop()), mock
}

func TestSalleRepository_CreateAssignsID(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salle (name, description, type, capacity)")).
		WithArgs("A", "d", "VIP", 20).
		WillReturnRows(pgxmock.NewRows([]string{"salle_id"}).AddRow(int64(7)))

	salle := &entity.Salle{Name: "A", Description: "d", Type: "VIP", Capacity: 20}
	require.NoError(t, repo.Create(context.Background(), salle))

	assert.Equal(t, int64(7), salle.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_FindByIDMissingReturnsNil(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM salle")).
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(salleColumns))

	salle, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, salle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_FindByIDError(t *testing.T) {
	repo, mock := newSalleRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("FROM salle")).
		WithArgs(int64(1)).
		WillReturnError(boom)

	_, err := repo.FindByID(context.Background(), 1)
	require.ErrorIs(t, err, boom)
}

func TestSalleRepository_FindAllWithCapacityFilter(t *testing.T) {
	repo, mock := newSalleRepo(t)
	max := 20

	mock.ExpectQuery(regexp.QuoteMeta("AND capacity <= $1 ORDER BY salle_id LIMIT $2 OFFSET $3")).
		WithArgs(20, 10, 10).
		WillReturnRows(pgxmock.NewRows(salleColumns).
			AddRow(int64(11), "A", "d", "VIP", 18).
			AddRow(int64(12), "B", "d", "standard", 20))

	salles, err := repo.FindAll(context.Background(), entity.ListFilter{Limit: 10, Offset: 10, Max: &max})
	require.NoError(t, err)
	require.Len(t, salles, 2)
	assert.Equal(t, int64(11), salles[0].ID)
	assert.Equal(t, 20, salles[1].Capacity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_FindAllWithoutFilter(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY salle_id LIMIT $1 OFFSET $2")).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(salleColumns))

	salles, err := repo.FindAll(context.Background(), entity.ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, salles)
	assert.Empty(t, salles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_CountAll(t *testing.T) {
	repo, mock := newSalleRepo(t)
	max := 25

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM salle WHERE capacity <= $1")).
		WithArgs(25).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := repo.CountAll(context.Background(), &max)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_Update(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE salle")).
		WithArgs(int64(3), "A", "d", "VIP", 22).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &entity.Salle{ID: 3, Name: "A", Description: "d", Type: "VIP", Capacity: 22})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_UpdateNoRows(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE salle")).
		WithArgs(int64(3), "A", "d", "VIP", 22).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &entity.Salle{ID: 3, Name: "A", Description: "d", Type: "VIP", Capacity: 22})
	require.Error(t, err)
}

func TestSalleRepository_DeleteReturnsSnapshot(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM salle")).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(salleColumns).AddRow(int64(5), "A", "d", "VIP", 20))

	salle, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, salle)
	assert.Equal(t, "A", salle.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalleRepository_DeleteMissing(t *testing.T) {
	repo, mock := newSalleRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM salle")).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(salleColumns))

	salle, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, salle)
}
