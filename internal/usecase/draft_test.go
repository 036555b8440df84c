package usecase_test

import (
	"testing"

	"bike-rental/internal/usecase"
	"bike-rental/pkg/apperr"

	"github.com/shopspring/decimal"
)

func TestDraftRejectsPastStartDate(t *testing.T) {
	draft := usecase.NewDraftBooking(testBike("500.00"))

	err := draft.SetStartDate(futureDate(-1))
	if err == nil {
		t.Fatal("expected error for past start date, got nil")
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if draft.StartDate != nil {
		t.Error("start date should stay unset after a rejected selection")
	}
}

func TestDraftAcceptsTodayAsStartDate(t *testing.T) {
	draft := usecase.NewDraftBooking(testBike("500.00"))

	if err := draft.SetStartDate(futureDate(0)); err != nil {
		t.Fatalf("today must be a valid start date: %v", err)
	}
}

func TestDraftRequiresStartBeforeEnd(t *testing.T) {
	draft := usecase.NewDraftBooking(testBike("500.00"))

	err := draft.SetEndDate(futureDate(3))
	if err == nil {
		t.Fatal("expected error when setting end date without a start date")
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDraftRejectsEndBeforeStart(t *testing.T) {
	draft := usecase.NewDraftBooking(testBike("500.00"))

	if err := draft.SetStartDate(futureDate(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := draft.SetEndDate(futureDate(3))
	if err == nil {
		t.Fatal("expected error for end date before start date")
	}
	if draft.EndDate != nil {
		t.Error("end date should stay unset after a rejected selection")
	}
}

func TestDraftMovingStartPastEndClearsEnd(t *testing.T) {
	draft := usecase.NewDraftBooking(testBike("500.00"))

	if err := draft.SetStartDate(futureDate(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := draft.SetEndDate(futureDate(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Moving the start past the chosen end must clear the end, never hold
	// an inverted range.
	if err := draft.SetStartDate(futureDate(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.EndDate != nil {
		t.Error("end date should be cleared when the start moves past it")
	}
	if draft.Complete() {
		t.Error("draft should be incomplete after the end date is cleared")
	}
}

func TestDraftQuote(t *testing.T) {
	var calc usecase.PricingCalculator
	draft := usecase.NewDraftBooking(testBike("500.00"))

	if err := draft.SetStartDate(futureDate(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := draft.SetEndDate(futureDate(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	days, total, err := draft.Quote(calc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Errorf("days = %d, want 3", days)
	}
	if want := decimal.RequireFromString("1500.00"); !total.Equal(want) {
		t.Errorf("total = %s, want %s", total, want)
	}
}

func TestDraftQuoteIncomplete(t *testing.T) {
	var calc usecase.PricingCalculator
	draft := usecase.NewDraftBooking(testBike("500.00"))

	if err := draft.SetStartDate(futureDate(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := draft.Quote(calc); err == nil {
		t.Fatal("expected error quoting a draft without an end date")
	}
}
