package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"bike-rental/pkg/utils"

	"github.com/shopspring/decimal"
)

// SettlementGateway is the boundary to the payment processor. A real
// deployment swaps the simulator for an actual gateway client behind the
// same interface.
type SettlementGateway interface {
	// Charge captures the amount and returns the processor's opaque
	// transaction reference.
	Charge(ctx context.Context, amount decimal.Decimal, card CardDetails) (string, error)
}

// ErrChargeDeclined is the simulated processor decline.
var ErrChargeDeclined = errors.New("charge declined by payment gateway")

// simulatedGateway models the processor round-trip with a bounded delay and
// optional failure injection. No network call is made.
type simulatedGateway struct {
	delay       time.Duration
	failureRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulatedGateway(config utils.PaymentConfig) SettlementGateway {
	return &simulatedGateway{
		delay:       time.Duration(config.SettleDelayMs) * time.Millisecond,
		failureRate: config.FailureRate,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, amount decimal.Decimal, card CardDetails) (string, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if g.shouldFail() {
		return "", ErrChargeDeclined
	}

	return utils.GenerateTransactionID(), nil
}

func (g *simulatedGateway) shouldFail() bool {
	if g.failureRate <= 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64() < g.failureRate
}
