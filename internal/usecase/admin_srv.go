package usecase

import (
	"context"

	"bike-rental/internal/data/entity"
	"bike-rental/internal/data/repository"
	"bike-rental/internal/dto/request"
	"bike-rental/internal/dto/response"
	"bike-rental/pkg/apperr"
	"bike-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	// TransitionBooking applies an operator status change. Repeating a
	// transition a booking already has is a no-op; it never touches the
	// payment status or any transaction row.
	TransitionBooking(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListTransactions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) TransitionBooking(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Transition booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validationf("invalid booking ID format %s", bookingID)
	}

	newStatus := entity.BookingStatus(req.Status)

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("look up booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking %s not found", bookingID)
	}

	// Repeating the current status is a no-op, not an error.
	if booking.BookingStatus == newStatus {
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	// completed and cancelled are terminal; no crossing between them.
	if booking.BookingStatus.IsTerminal() {
		return nil, apperr.Conflictf("booking is already %s", string(booking.BookingStatus))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to transition booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, apperr.Persistence("update booking status", err)
	}

	booking.BookingStatus = newStatus

	s.log.Info("Booking transitioned",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *adminService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, apperr.Persistence("list bookings", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, apperr.Persistence("count bookings", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, detail := range bookings {
		bookingResponses[i] = response.BookingDetailToResponse(detail)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *adminService) ListTransactions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	transactions, err := s.repo.Transaction.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list transactions", zap.Error(err))
		return nil, apperr.Persistence("list transactions", err)
	}

	total, err := s.repo.Transaction.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count transactions", zap.Error(err))
		return nil, apperr.Persistence("count transactions", err)
	}

	txnResponses := make([]response.TransactionResponse, len(transactions))
	for i, detail := range transactions {
		txnResponses[i] = response.TransactionDetailToResponse(detail)
	}

	return response.NewPaginatedResponse(txnResponses, req.Page, req.PerPage, total), nil
}
