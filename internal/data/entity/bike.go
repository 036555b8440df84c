package entity

import (
	"github.com/shopspring/decimal"
)

// Bike is the rentable asset. The catalog owns these rows; the booking and
// payment services only ever read them.
type Bike struct {
	BaseSimple
	Name        string          `db:"name"`
	Brand       string          `db:"brand"`
	Model       string          `db:"model"`
	Type        string          `db:"type"`
	PricePerDay decimal.Decimal `db:"price_per_day"`
	Available   bool            `db:"available"`
	ImageURL    *string         `db:"image_url"`
	Description *string         `db:"description"`
}
