package usecase

import (
	"context"
	"time"

	"bike-rental/internal/data/entity"
	"bike-rental/internal/data/repository"
	"bike-rental/internal/dto/request"
	"bike-rental/internal/dto/response"
	"bike-rental/pkg/apperr"
	"bike-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	calc PricingCalculator
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		return nil, apperr.Validationf("invalid bike ID format %s", req.BikeID)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperr.Validationf("invalid start date %s", req.StartDate)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperr.Validationf("invalid end date %s", req.EndDate)
	}

	// Validate bike exists and is rentable
	bike, err := s.repo.Bike.FindByID(ctx, bikeID)
	if err != nil {
		return nil, apperr.Persistence("look up bike", err)
	}
	if bike == nil {
		return nil, apperr.NotFoundf("bike %s not found", req.BikeID)
	}
	if !bike.Available {
		return nil, apperr.Validationf("bike %s is not available", bike.Name)
	}

	// Build the draft; the setters enforce the date-range rules
	draft := NewDraftBooking(bike)
	if err := draft.SetStartDate(startDate); err != nil {
		return nil, err
	}
	if err := draft.SetEndDate(endDate); err != nil {
		return nil, err
	}

	totalDays, totalPrice, err := draft.Quote(s.calc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userUUID,
		BikeID:        bikeID,
		StartDate:     *draft.StartDate,
		EndDate:       *draft.EndDate,
		TotalDays:     totalDays,
		TotalPrice:    totalPrice,
		PaymentStatus: entity.PaymentStatusPending,
		BookingStatus: entity.BookingStatusActive,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("bike_id", req.BikeID),
		)
		return nil, apperr.Persistence("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("bike_id", req.BikeID),
		zap.Int("total_days", totalDays),
		zap.String("total_price", totalPrice.String()),
	)

	resp := response.BookingToResponse(booking)
	resp.BikeName = bike.Name
	resp.BikeBrand = bike.Brand
	resp.BikeModel = bike.Model
	resp.BikeImageURL = bike.ImageURL
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, apperr.Persistence("get user bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, apperr.Persistence("count user bookings", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, detail := range bookings {
		bookingResponses[i] = response.BookingDetailToResponse(detail)
	}

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}
