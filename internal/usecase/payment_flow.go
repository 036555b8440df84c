package usecase

import (
	"regexp"
	"strings"

	"bike-rental/pkg/apperr"
)

// FlowState enumerates the steps of the payment capture wizard.
type FlowState string

const (
	StateCollectingCard    FlowState = "collecting_card"
	StateCollectingBilling FlowState = "collecting_billing"
	StateReview            FlowState = "review"
	StateSettling          FlowState = "settling"
	StateSucceeded         FlowState = "succeeded"
)

// flowTransitions lists the valid target states per state. Settling may fall
// back to Review so the caller can retry after a gateway failure.
var flowTransitions = map[FlowState][]FlowState{
	StateCollectingCard:    {StateCollectingBilling},
	StateCollectingBilling: {StateReview, StateCollectingCard},
	StateReview:            {StateSettling, StateCollectingBilling},
	StateSettling:          {StateSucceeded, StateReview},
	StateSucceeded:         {},
}

func canTransition(from, to FlowState) bool {
	for _, s := range flowTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// CardDetails is transient form state. It lives only in memory for the
// duration of the flow; nothing here is persisted except the last four
// digits and the derived brand.
type CardDetails struct {
	Number     string
	Expiry     string
	CVV        string
	HolderName string
}

type BillingDetails struct {
	Email      string
	Address    string
	City       string
	PostalCode string
}

// PaymentFlow is the capture state machine:
//
//	CollectingCard -> CollectingBilling -> Review -> Settling -> Succeeded
//
// Each forward move is guarded; Back walks the wizard one step; a failed
// settlement returns to Review for retry. The flow is independent of any
// presentation layer, and abandoning it before Settling has no persisted
// side effect.
type PaymentFlow struct {
	state   FlowState
	card    CardDetails
	billing BillingDetails
}

func NewPaymentFlow() *PaymentFlow {
	return &PaymentFlow{state: StateCollectingCard}
}

func (f *PaymentFlow) State() FlowState {
	return f.state
}

func (f *PaymentFlow) Card() CardDetails {
	return f.card
}

func (f *PaymentFlow) Billing() BillingDetails {
	return f.billing
}

// SubmitCard formats and validates the card details, then advances to
// billing collection. On a guard failure the flow stays where it is.
func (f *PaymentFlow) SubmitCard(card CardDetails) error {
	if f.state != StateCollectingCard {
		return apperr.Validationf("cannot submit card details in state %s", f.state)
	}

	card.Number = FormatCardNumber(card.Number)
	card.Expiry = FormatExpiry(card.Expiry)

	if err := validateCard(card); err != nil {
		return err
	}

	f.card = card
	f.state = StateCollectingBilling
	return nil
}

// SubmitBilling validates the billing details and advances to review.
func (f *PaymentFlow) SubmitBilling(billing BillingDetails) error {
	if f.state != StateCollectingBilling {
		return apperr.Validationf("cannot submit billing details in state %s", f.state)
	}

	if err := validateBilling(billing); err != nil {
		return err
	}

	f.billing = billing
	f.state = StateReview
	return nil
}

// Advance confirms the review step and enters Settling. The guards run once
// more so stale form state can never reach settlement.
func (f *PaymentFlow) Advance() error {
	if f.state != StateReview {
		return apperr.Validationf("cannot advance from state %s", f.state)
	}

	if err := validateCard(f.card); err != nil {
		return err
	}
	if err := validateBilling(f.billing); err != nil {
		return err
	}

	f.state = StateSettling
	return nil
}

// Back walks the wizard one step towards card collection.
func (f *PaymentFlow) Back() error {
	var target FlowState
	switch f.state {
	case StateCollectingBilling:
		target = StateCollectingCard
	case StateReview:
		target = StateCollectingBilling
	default:
		return apperr.Validationf("cannot go back from state %s", f.state)
	}

	f.state = target
	return nil
}

// FinishSettlement marks the flow settled.
func (f *PaymentFlow) FinishSettlement() error {
	if !canTransition(f.state, StateSucceeded) {
		return apperr.Validationf("cannot finish settlement from state %s", f.state)
	}
	f.state = StateSucceeded
	return nil
}

// FailSettlement returns the flow to Review for a retry.
func (f *PaymentFlow) FailSettlement() error {
	if !canTransition(f.state, StateReview) {
		return apperr.Validationf("cannot fail settlement from state %s", f.state)
	}
	f.state = StateReview
	return nil
}

func validateCard(card CardDetails) error {
	pan := sanitizePAN(card.Number)

	if len(pan) < 13 {
		return apperr.Validation("card number must have at least 13 digits")
	}
	for _, r := range pan {
		if r < '0' || r > '9' {
			return apperr.Validation("card number must contain digits only")
		}
	}
	if !expiryPattern.MatchString(card.Expiry) {
		return apperr.Validation("expiry date must be in MM/YY format")
	}
	if len(card.CVV) < 3 || len(card.CVV) > 4 {
		return apperr.Validation("CVV must be 3 or 4 digits")
	}
	for _, r := range card.CVV {
		if r < '0' || r > '9' {
			return apperr.Validation("CVV must contain digits only")
		}
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return apperr.Validation("cardholder name is required")
	}

	return nil
}

func validateBilling(billing BillingDetails) error {
	if !strings.Contains(billing.Email, "@") {
		return apperr.Validation("a valid email address is required")
	}
	if strings.TrimSpace(billing.Address) == "" {
		return apperr.Validation("billing address is required")
	}
	if strings.TrimSpace(billing.City) == "" {
		return apperr.Validation("city is required")
	}
	if strings.TrimSpace(billing.PostalCode) == "" {
		return apperr.Validation("postal code is required")
	}

	return nil
}

// FormatCardNumber groups the PAN into blocks of 4 digits separated by
// single spaces, capped at 19 formatted characters (16 digits).
func FormatCardNumber(input string) string {
	digits := strings.ReplaceAll(input, " ", "")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	formatted := b.String()
	if len(formatted) > 19 {
		formatted = formatted[:19]
	}
	return formatted
}

// FormatExpiry keeps only digits and inserts the slash after the month,
// capped at 5 characters: "1226" becomes "12/26".
func FormatExpiry(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) < 2 {
		return s
	}
	if len(s) > 4 {
		s = s[:4]
	}
	return s[:2] + "/" + s[2:]
}

// CardBrand derives the brand from the PAN prefix.
func CardBrand(pan string) string {
	pan = sanitizePAN(pan)

	switch {
	case strings.HasPrefix(pan, "4"):
		return "Visa"
	case strings.HasPrefix(pan, "5"):
		return "Mastercard"
	case strings.HasPrefix(pan, "3"):
		return "American Express"
	default:
		return "Unknown"
	}
}

// LastFour returns the last four digits of the PAN.
func LastFour(pan string) string {
	pan = sanitizePAN(pan)
	if len(pan) < 4 {
		return pan
	}
	return pan[len(pan)-4:]
}

func sanitizePAN(pan string) string {
	return strings.ReplaceAll(pan, " ", "")
}

// TestCard is a development shortcut for exercising the capture flow. The
// catalog is not part of the payment contract.
type TestCard struct {
	Number      string
	Brand       string
	Description string
}

func TestCards() []TestCard {
	return []TestCard{
		{Number: "4242424242424242", Brand: "Visa", Description: "Valid test card"},
		{Number: "5555555555554444", Brand: "Mastercard", Description: "Valid test card"},
		{Number: "378282246310005", Brand: "American Express", Description: "Valid test card"},
	}
}
