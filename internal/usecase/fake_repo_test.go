package usecase

import (
	"context"
	"errors"
	"sort"

	"cinema-salles/internal/data/entity"
)

var errStorage = errors.New("connection refused")

type fakeSalleRepo struct {
	rows    map[int64]entity.Salle
	nextID  int64
	updates int
	err     error
}

func newFakeSalleRepo() *fakeSalleRepo {
	return &fakeSalleRepo{rows: map[int64]entity.Salle{}, nextID: 1}
}

func (f *fakeSalleRepo) Create(ctx context.Context, salle *entity.Salle) error {
	if f.err != nil {
		return f.err
	}
	salle.ID = f.nextID
	f.nextID++
	f.rows[salle.ID] = *salle
	return nil
}

func (f *fakeSalleRepo) FindByID(ctx context.Context, id int64) (*entity.Salle, error) {
	if f.err != nil {
		return nil, f.err
	}
	salle, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &salle, nil
}

func (f *fakeSalleRepo) matching(max *int) []*entity.Salle {
	var out []*entity.Salle
	for _, row := range f.rows {
		if max != nil && row.Capacity > *max {
			continue
		}
		salle := row
		out = append(out, &salle)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeSalleRepo) FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Salle, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.matching(filter.Max)
	if filter.Offset >= len(all) {
		return []*entity.Salle{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return all[filter.Offset:end], nil
}

func (f *fakeSalleRepo) CountAll(ctx context.Context, capacityMax *int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(capacityMax))), nil
}

func (f *fakeSalleRepo) Update(ctx context.Context, salle *entity.Salle) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	f.rows[salle.ID] = *salle
	return nil
}

func (f *fakeSalleRepo) Delete(ctx context.Context, id int64) (*entity.Salle, error) {
	if f.err != nil {
		return nil, f.err
	}
	salle, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	delete(f.rows, id)
	return &salle, nil
}

type fakeMovieRepo struct {
	rows    map[int64]entity.Movie
	nextID  int64
	updates int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{rows: map[int64]entity.Movie{}, nextID: 1}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	movie.ID = f.nextID
	f.nextID++
	f.rows[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (f *fakeMovieRepo) matching(max *int) []*entity.Movie {
	var out []*entity.Movie
	for _, row := range f.rows {
		if max != nil && row.Duration > *max {
			continue
		}
		movie := row
		out = append(out, &movie)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, filter entity.ListFilter) ([]*entity.Movie, error) {
	all := f.matching(filter.Max)
	if filter.Offset >= len(all) {
		return []*entity.Movie{}, nil
	}
	end := min(filter.Offset+filter.Limit, len(all))
	return all[filter.Offset:end], nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context, durationMax *int) (int64, error) {
	return int64(len(f.matching(durationMax))), nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.updates++
	f.rows[movie.ID] = *movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	delete(f.rows, id)
	return &movie, nil
}
