package request

// PaymentRequest carries the full capture payload for one payment attempt.
// The card fields are transient: they are run through the capture state
// machine and never persisted beyond last four digits and brand.
type PaymentRequest struct {
	CardNumber     string `json:"card_number" validate:"required,min=13"`
	ExpiryDate     string `json:"expiry_date" validate:"required"`
	CVV            string `json:"cvv" validate:"required,min=3,max=4"`
	CardholderName string `json:"cardholder_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	BillingAddress string `json:"billing_address" validate:"required"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required"`
}
