package usecase

import (
	"time"

	"bike-rental/internal/data/entity"
	"bike-rental/pkg/apperr"

	"github.com/shopspring/decimal"
)

// DraftBooking is the unpersisted date-selection state for one bike. It can
// never be paid or transitioned; only a persisted entity.Booking can. The
// setters keep the range legal at every step instead of validating once at
// the end.
type DraftBooking struct {
	Bike      *entity.Bike
	StartDate *time.Time
	EndDate   *time.Time
}

func NewDraftBooking(bike *entity.Bike) *DraftBooking {
	return &DraftBooking{Bike: bike}
}

// SetStartDate picks the start of the range. Moving the start past an already
// chosen end date clears the end date and forces re-selection, rather than
// silently holding an inverted range.
func (d *DraftBooking) SetStartDate(date time.Time) error {
	day := truncateToDay(date)

	if day.Before(today()) {
		return apperr.Validation("start date must not be in the past")
	}

	d.StartDate = &day
	if d.EndDate != nil && d.EndDate.Before(day) {
		d.EndDate = nil
	}
	return nil
}

// SetEndDate picks the end of the range; requires a start date first.
func (d *DraftBooking) SetEndDate(date time.Time) error {
	if d.StartDate == nil {
		return apperr.Validation("start date must be selected first")
	}

	day := truncateToDay(date)
	if day.Before(*d.StartDate) {
		return apperr.Validation("end date must not be before start date")
	}

	d.EndDate = &day
	return nil
}

// Complete reports whether both dates are selected.
func (d *DraftBooking) Complete() bool {
	return d.StartDate != nil && d.EndDate != nil
}

// Quote computes the inclusive day count and total price from the bike's
// current daily rate.
func (d *DraftBooking) Quote(calc PricingCalculator) (int, decimal.Decimal, error) {
	if !d.Complete() {
		return 0, decimal.Zero, apperr.Validation("both start and end dates must be selected")
	}

	days, err := calc.Duration(*d.StartDate, *d.EndDate)
	if err != nil {
		return 0, decimal.Zero, err
	}

	return days, calc.Price(days, d.Bike.PricePerDay), nil
}

func today() time.Time {
	return truncateToDay(time.Now())
}
