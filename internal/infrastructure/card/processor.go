package card

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// DefaultAcceptedCards are the test card numbers the stub processor accepts
// when no allowlist is configured.
var DefaultAcceptedCards = []string{"4111111111111111", "4242424242424242"}

// StubProcessor stands in for a real card processor. It accepts numbers from
// a fixed allowlist and every charge succeeds.
type StubProcessor struct {
	accepted map[string]struct{}
	charges  atomic.Int64
}

func NewStubProcessor(acceptedCards []string) *StubProcessor {
	if len(acceptedCards) == 0 {
		acceptedCards = DefaultAcceptedCards
	}
	accepted := make(map[string]struct{}, len(acceptedCards))
	for _, n := range acceptedCards {
		accepted[n] = struct{}{}
	}
	return &StubProcessor{accepted: accepted}
}

func (p *StubProcessor) Accepts(cardNumber string) bool {
	_, ok := p.accepted[cardNumber]
	return ok
}

func (p *StubProcessor) Charge(ctx context.Context, cardNumber string, amount float64) error {
	p.charges.Add(1)
	slog.DebugContext(ctx, "card charged", "card", Mask(cardNumber), "amount", amount)
	return nil
}

// Charges reports how many charges the processor has accepted.
func (p *StubProcessor) Charges() int64 {
	return p.charges.Load()
}

// Mask hides all but the last four digits of a card number.
func Mask(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	masked := make([]byte, len(cardNumber))
	for i := range masked[:len(masked)-4] {
		masked[i] = '*'
	}
	copy(masked[len(masked)-4:], cardNumber[len(cardNumber)-4:])
	return string(masked)
}
