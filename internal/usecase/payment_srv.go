package usecase

import (
	"context"
	"sync"
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

const paymentMethodCard = "Credit Card"

type PaymentService interface {
	// Pay runs the capture flow for one booking and, on success, records the
	// completed transaction and flips the booking to paid in a single unit.
	Pay(ctx context.Context, userID, bookingID string, req *request.PaymentRequest) (*response.TransactionResponse, error)
	TestCards() []response.TestCardResponse
}

type paymentService struct {
	repo     *repository.Repository
	gateway  SettlementGateway
	currency string
	log      *zap.Logger

	// inflight blocks a second concurrent settlement attempt per booking
	// while the gateway call is suspended.
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

func NewPaymentService(repo *repository.Repository, gateway SettlementGateway, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		gateway:  gateway,
		currency: config.Payment.Currency,
		log:      log.With(zap.String("service", "payment")),
		inflight: make(map[uuid.UUID]struct{}),
	}
}

func (s *paymentService) Pay(ctx context.Context, userID, bookingID string, req *request.PaymentRequest) (*response.TransactionResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validationf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, apperr.Persistence("look up booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking %s not found", bookingID)
	}

	if booking.UserID != userUUID {
		return nil, apperr.Validation("booking does not belong to the caller")
	}
	if booking.PaymentStatus != entity.PaymentStatusPending {
		return nil, apperr.Conflict("booking is already paid")
	}
	if booking.BookingStatus != entity.BookingStatusActive {
		return nil, apperr.Conflict("booking is no longer active")
	}

	if !s.acquire(bookingUUID) {
		return nil, apperr.Conflict("a payment for this booking is already in progress")
	}
	defer s.release(bookingUUID)

	// Drive the capture state machine: card -> billing -> review -> settling.
	// Guard failures surface before anything is written.
	flow := NewPaymentFlow()
	if err := flow.SubmitCard(CardDetails{
		Number:     req.CardNumber,
		Expiry:     req.ExpiryDate,
		CVV:        req.CVV,
		HolderName: req.CardholderName,
	}); err != nil {
		return nil, err
	}
	if err := flow.SubmitBilling(BillingDetails{
		Email:      req.Email,
		Address:    req.BillingAddress,
		City:       req.City,
		PostalCode: req.PostalCode,
	}); err != nil {
		return nil, err
	}
	if err := flow.Advance(); err != nil {
		return nil, err
	}

	card := flow.Card()

	gatewayRef, err := s.gateway.Charge(ctx, booking.TotalPrice, card)
	if err != nil {
		flow.FailSettlement()
		s.recordFailedAttempt(ctx, booking, card)
		s.log.Warn("Settlement failed at gateway",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, apperr.Gateway("payment could not be processed, please try again", err)
	}

	now := time.Now()
	txn := &entity.PaymentTransaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Amount:        booking.TotalPrice,
		PaymentMethod: paymentMethodCard,
		CardLastFour:  LastFour(card.Number),
		CardBrand:     CardBrand(card.Number),
		Currency:      s.currency,
		Status:        entity.TransactionStatusCompleted,
		TransactionID: gatewayRef,
	}

	// Both writes commit or neither; on failure the booking stays pending.
	if err := s.repo.Settlement.RecordSettlement(ctx, txn); err != nil {
		flow.FailSettlement()
		s.log.Error("Failed to record settlement",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("transaction_id", gatewayRef),
		)
		return nil, apperr.Persistence("record settlement", err)
	}

	flow.FinishSettlement()

	s.log.Info("Payment settled",
		zap.String("booking_id", bookingID),
		zap.String("transaction_id", gatewayRef),
		zap.String("amount", txn.Amount.String()),
		zap.String("card_brand", txn.CardBrand),
	)

	resp := response.TransactionToResponse(txn)
	return &resp, nil
}

func (s *paymentService) TestCards() []response.TestCardResponse {
	cards := TestCards()
	responses := make([]response.TestCardResponse, len(cards))
	for i, card := range cards {
		responses[i] = response.TestCardResponse{
			Number:      card.Number,
			Brand:       card.Brand,
			Description: card.Description,
		}
	}
	return responses
}

// recordFailedAttempt keeps an audit row for a declined charge. It never
// mutates the booking, and a failure here is only logged.
func (s *paymentService) recordFailedAttempt(ctx context.Context, booking *entity.Booking, card CardDetails) {
	now := time.Now()
	txn := &entity.PaymentTransaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Amount:        booking.TotalPrice,
		PaymentMethod: paymentMethodCard,
		CardLastFour:  LastFour(card.Number),
		CardBrand:     CardBrand(card.Number),
		Currency:      s.currency,
		Status:        entity.TransactionStatusFailed,
		TransactionID: utils.GenerateTransactionID(),
	}

	if err := s.repo.Transaction.Create(ctx, txn); err != nil {
		s.log.Warn("Failed to record failed payment attempt",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *paymentService) acquire(bookingID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[bookingID]; busy {
		return false
	}
	s.inflight[bookingID] = struct{}{}
	return true
}

func (s *paymentService) release(bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, bookingID)
}
