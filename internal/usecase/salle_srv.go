package usecase

import (
	"context"
	"fmt"

	"cinema-salles/internal/data/entity"
	"cinema-salles/internal/data/repository"
	"cinema-salles/internal/dto/request"
	"cinema-salles/internal/dto/response"

	"go.uber.org/zap"
)

type SalleService interface {
	ListSalles(ctx context.Context, req request.PageRequest) (*response.SalleListResponse, error)
	GetSalleByID(ctx context.Context, salleID int64) (*response.SalleResponse, error)
	CreateSalle(ctx context.Context, req *request.SalleRequest) (*response.SalleResponse, error)
	UpdateSalle(ctx context.Context, req *request.SalleUpdateRequest) (*response.SalleResponse, error)
	DeleteSalle(ctx context.Context, salleID int64) (*response.SalleResponse, error)
}

type salleService struct {
	repo repository.SalleRepository
	log  *zap.Logger
}

func NewSalleService(repo repository.SalleRepository, log *zap.Logger) SalleService {
	return &salleService{
		repo: repo,
		log:  log.With(zap.String("service", "salle")),
	}
}

// ListSalles returns one page of salles plus the size of the whole filtered
// set.
func (s *salleService) ListSalles(ctx context.Context, req request.PageRequest) (*response.SalleListResponse, error) {
	filter := entity.ListFilter{
		Limit:  req.Limit,
		Offset: req.Offset(),
		Max:    req.Max,
	}

	salles, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get salles from repository",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.Intp("capacity_max", req.Max),
		)
		return nil, fmt.Errorf("get salles: %w", err)
	}

	total, err := s.repo.CountAll(ctx, req.Max)
	if err != nil {
		s.log.Error("Failed to count salles",
			zap.Error(err),
			zap.Intp("capacity_max", req.Max),
		)
		return nil, fmt.Errorf("count salles: %w", err)
	}

	s.log.Debug("Salles retrieved",
		zap.Int("count", len(salles)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("limit", req.Limit),
	)

	return response.NewSalleListResponse(salles, total), nil
}

func (s *salleService) GetSalleByID(ctx context.Context, salleID int64) (*response.SalleResponse, error) {
	salle, err := s.repo.FindByID(ctx, salleID)
	if err != nil {
		return nil, fmt.Errorf("get salle %d: %w", salleID, err)
	}

	if salle == nil {
		return nil, &NotFoundError{Entity: "salle", ID: salleID}
	}

	salleResp := response.SalleToResponse(salle)
	return &salleResp, nil
}

func (s *salleService) CreateSalle(ctx context.Context, req *request.SalleRequest) (*response.SalleResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create salle validation failed", zap.Error(err))
		return nil, err
	}

	salle := &entity.Salle{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Capacity:    *req.Capacity,
	}

	if err := s.repo.Create(ctx, salle); err != nil {
		return nil, fmt.Errorf("create salle: %w", err)
	}

	s.log.Info("Salle created",
		zap.Int64("salle_id", salle.ID),
		zap.String("name", salle.Name),
		zap.Int("capacity", salle.Capacity),
	)

	salleResp := response.SalleToResponse(salle)
	return &salleResp, nil
}

// UpdateSalle applies the capacity when one was supplied. An absent capacity
// leaves the stored salle untouched; zero is a real value, not "absent".
func (s *salleService) UpdateSalle(ctx context.Context, req *request.SalleUpdateRequest) (*response.SalleResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update salle validation failed", zap.Error(err))
		return nil, err
	}

	salle, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("get salle %d: %w", req.ID, err)
	}
	if salle == nil {
		return nil, &NotFoundError{Entity: "salle", ID: req.ID}
	}

	updated := false
	if req.Capacity != nil && *req.Capacity != salle.Capacity {
		salle.Capacity = *req.Capacity
		updated = true
	}

	if updated {
		if err := s.repo.Update(ctx, salle); err != nil {
			return nil, fmt.Errorf("update salle %d: %w", req.ID, err)
		}
	}

	s.log.Info("Salle updated",
		zap.Int64("salle_id", salle.ID),
		zap.Int("capacity", salle.Capacity),
		zap.Bool("was_updated", updated),
	)

	salleResp := response.SalleToResponse(salle)
	return &salleResp, nil
}

func (s *salleService) DeleteSalle(ctx context.Context, salleID int64) (*response.SalleResponse, error) {
	salle, err := s.repo.Delete(ctx, salleID)
	if err != nil {
		return nil, fmt.Errorf("delete salle %d: %w", salleID, err)
	}
	if salle == nil {
		return nil, &NotFoundError{Entity: "salle", ID: salleID}
	}

	s.log.Info("Salle deleted",
		zap.Int64("salle_id", salleID),
		zap.String("name", salle.Name),
	)

	salleResp := response.SalleToResponse(salle)
	return &salleResp, nil
}
