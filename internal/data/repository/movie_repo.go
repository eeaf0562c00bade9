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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Movie, error)
	CountAll(ctx context.Context, durationMax *int) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movie (title, description, duration, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING movie_id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.Genre,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT movie_id, title, description, duration, genre
		FROM movie
		WHERE movie_id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.Genre,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT movie_id, title, description, duration, genre
		FROM movie
		WHERE 1 = 1
	`)

	args := []interface{}{}
	argCount := 1

	if filter.Max != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND duration <= $%d", argCount))
		args = append(args, *filter.Max)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY movie_id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
			zap.Intp("duration_max", filter.Max),
		)
		return nil, fmt.Errorf("find all movies limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Genre,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context, durationMax *int) (int64, error) {
	query := `SELECT COUNT(*) FROM movie`
	args := []interface{}{}

	if durationMax != nil {
		query += " WHERE duration <= $1"
		args = append(args, *durationMax)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies",
			zap.Error(err),
			zap.Intp("duration_max", durationMax),
		)
		return 0, fmt.Errorf("count all movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movie
		SET title = $2, description = $3, duration = $4, genre = $5
		WHERE movie_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.Genre,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d vanished during update", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		DELETE FROM movie
		WHERE movie_id = $1
		RETURNING movie_id, title, description, duration, genre
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.Genre,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("delete movie %d: %w", id, err)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return &movie, nil
}
