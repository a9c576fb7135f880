package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	Actor     *User         `json:"-"`
	Target    *User         `json:"-"`
	Note      string        `json:"note"`
	Source    FundingSource `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
}

type FundingSource string

const (
	SourceBalance FundingSource = "balance"
	SourceCard    FundingSource = "card"
)

func newPayment(amount float64, actor, target *User, note string, source FundingSource) *Payment {
	return &Payment{
		ID:        uuid.New().String(),
		Amount:    amount,
		Actor:     actor,
		Target:    target,
		Note:      note,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}
