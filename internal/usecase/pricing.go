package usecase

import (
	"time"

	"bike-rental/pkg/apperr"

	"github.com/shopspring/decimal"
)

// PricingCalculator does the date and money arithmetic for a rental. It is
// pure and synchronous; both operations are deterministic for testing.
type PricingCalculator struct{}

// Duration returns the inclusive day count of a rental: booking the 1st
// through the 3rd is three days. Time-of-day is ignored.
func (PricingCalculator) Duration(start, end time.Time) (int, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)

	if e.Before(s) {
		return 0, apperr.Validation("end date must not be before start date")
	}

	return int(e.Sub(s).Hours()/24) + 1, nil
}

// Price multiplies the day count by the daily rate using exact decimal
// arithmetic, so the total reproduces identically across computation and
// persistence.
func (PricingCalculator) Price(days int, pricePerDay decimal.Decimal) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// truncateToDay normalizes a timestamp to its calendar date in UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
