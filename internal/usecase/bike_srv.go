package usecase

import (
	"context"

	"bike-rental/internal/data/repository"
	"bike-rental/internal/dto/request"
	"bike-rental/internal/dto/response"
	"bike-rental/pkg/apperr"

	"go.uber.org/zap"
)

// BikeService is the read-only view over the catalog. The engine never
// mutates bikes.
type BikeService interface {
	GetAvailableBikes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BikeResponse], error)
}

type bikeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBikeService(repo *repository.Repository, log *zap.Logger) BikeService {
	return &bikeService{
		repo: repo,
		log:  log.With(zap.String("service", "bike")),
	}
}

func (s *bikeService) GetAvailableBikes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BikeResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bikes, err := s.repo.Bike.FindAllAvailable(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get available bikes", zap.Error(err))
		return nil, apperr.Persistence("get available bikes", err)
	}

	total, err := s.repo.Bike.CountAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to count available bikes", zap.Error(err))
		return nil, apperr.Persistence("count available bikes", err)
	}

	bikeResponses := make([]response.BikeResponse, len(bikes))
	for i, bike := range bikes {
		bikeResponses[i] = response.BikeToResponse(bike)
	}

	return response.NewPaginatedResponse(bikeResponses, req.Page, req.PerPage, total), nil
}
