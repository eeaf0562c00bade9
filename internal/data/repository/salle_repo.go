package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinema-salles/internal/data/entity"
	"cinema-salles/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SalleRepository interface {
	Create(ctx context.Context, salle *entity.Salle) error
	FindByID(ctx context.Context, id int64) (*entity.Salle, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Salle, error)
	CountAll(ctx context.Context, capacityMax *int) (int64, error)
	Update(ctx context.Context, salle *entity.Salle) error
	Delete(ctx context.Context, id int64) (*entity.Salle, error)
}

type salleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSalleRepository(db database.PgxIface, log *zap.Logger) SalleRepository {
	return &salleRepository{
		db:  db,
		log: log.With(zap.String("repository", "salle")),
	}
}

func (r *salleRepository) Create(ctx context.Context, salle *entity.Salle) error {
	query := `
		INSERT INTO salle (name, description, type, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING salle_id
	`

	err := r.db.QueryRow(ctx, query,
		salle.Name,
		salle.Description,
		salle.Type,
		salle.Capacity,
	).Scan(&salle.ID)

	if err != nil {
		r.log.Error("Failed to create salle",
			zap.Error(err),
			zap.String("name", salle.Name),
		)
		return fmt.Errorf("create salle %s: %w", salle.Name, err)
	}

	return nil
}

func (r *salleRepository) FindByID(ctx context.Context, id int64) (*entity.Salle, error) {
	query := `
		SELECT salle_id, name, description, type, capacity
		FROM salle
		WHERE salle_id = $1
	`

	var salle entity.Salle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&salle.ID,
		&salle.Name,
		&salle.Description,
		&salle.Type,
		&salle.Capacity,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find salle by ID",
			zap.Error(err),
			zap.Int64("salle_id", id),
		)
		return nil, fmt.Errorf("find salle by ID %d: %w", id, err)
	}

	return &salle, nil
}

func (r *salleRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Salle, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT salle_id, name, description, type, capacity
		FROM salle
		WHERE 1 = 1
	`)

	args := []interface{}{}
	argCount := 1

	if filter.Max != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND capacity <= $%d", argCount))
		args = append(args, *filter.Max)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY salle_id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all salles",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
			zap.Intp("capacity_max", filter.Max),
		)
		return nil, fmt.Errorf("find all salles limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close()

	salles := []*entity.Salle{}
	for rows.Next() {
		var salle entity.Salle
		err := rows.Scan(
			&salle.ID,
			&salle.Name,
			&salle.Description,
			&salle.Type,
			&salle.Capacity,
		)
		if err != nil {
			r.log.Error("Failed to scan salle row", zap.Error(err))
			return nil, fmt.Errorf("scan salle row: %w", err)
		}
		salles = append(salles, &salle)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate salle rows: %w", err)
	}

	return salles, nil
}

func (r *salleRepository) CountAll(ctx context.Context, capacityMax *int) (int64, error) {
	query := `SELECT COUNT(*) FROM salle`
	args := []interface{}{}

	if capacityMax != nil {
		query += " WHERE capacity <= $1"
		args = append(args, *capacityMax)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count salles",
			zap.Error(err),
			zap.Intp("capacity_max", capacityMax),
		)
		return 0, fmt.Errorf("count all salles: %w", err)
	}

	return total, nil
}

func (r *salleRepository) Update(ctx context.Context, salle *entity.Salle) error {
	query := `
		UPDATE salle
		SET name = $2, description = $3, type = $4, capacity = $5
		WHERE salle_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		salle.ID,
		salle.Name,
		salle.Description,
		salle.Type,
		salle.Capacity,
	)

	if err != nil {
		r.log.Error("Failed to update salle",
			zap.Error(err),
			zap.Int64("salle_id", salle.ID),
		)
		return fmt.Errorf("update salle %d: %w", salle.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("salle %d vanished during update", salle.ID)
	}

	return nil
}

// Delete removes the row and returns its last state, or nil when no row
// had that id.
func (r *salleRepository) Delete(ctx context.Context, id int64) (*entity.Salle, error) {
	query := `
		DELETE FROM salle
		WHERE salle_id = $1
		RETURNING salle_id, name, description, type, capacity
	`

	var salle entity.Salle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&salle.ID,
		&salle.Name,
		&salle.Description,
		&salle.Type,
		&salle.Capacity,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete salle",
			zap.Error(err),
			zap.Int64("salle_id", id),
		)
		return nil, fmt.Errorf("delete salle %d: %w", id, err)
	}

	r.log.Info("Salle deleted", zap.Int64("salle_id", id))
	return &salle, nil
}
