package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	pkgerrors "github.com/honeynil/minivenmo/pkg/errors"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{4,15}$`)

// CardProcessor validates and charges credit cards on behalf of a user.
// Charge returns nil on success, pkgerrors.ErrCardDeclined when the card is
// refused, or pkgerrors.ErrProcessorUnavailable when the processor cannot be
// reached. Any other error is treated as the processor being unavailable.
type CardProcessor interface {
	Accepts(cardNumber string) bool
	Charge(ctx context.Context, cardNumber string, amount float64) error
}

// User is an account holding a balance, an optional credit card, a friend
// list and an append-only activity log.
//
// A User is not safe for concurrent use. Balance updates are plain
// read-modify-write, so callers that share a User between goroutines must
// serialize Pay, AddFriend and AddToBalance themselves.
type User struct {
	username         string
	balance          float64
	creditCardNumber string
	friends          *FriendSet
	activities       []Activity
	processor        CardProcessor
}

func NewUser(username string, processor CardProcessor) (*User, error) {
	if !IsValidUsername(username) {
		return nil, pkgerrors.ErrInvalidUsername
	}
	return &User{
		username:  username,
		friends:   NewFriendSet(),
		processor: processor,
	}, nil
}

func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func (u *User) Username() string         { return u.username }
func (u *User) Balance() float64         { return u.balance }
func (u *User) CreditCardNumber() string { return u.creditCardNumber }
func (u *User) HasCreditCard() bool      { return u.creditCardNumber != "" }

// AddToBalance adds amount to the balance without validation; negative
// values are accepted.
func (u *User) AddToBalance(amount float64) {
	u.balance += amount
}

func (u *User) AddCreditCard(cardNumber string) error {
	if u.HasCreditCard() {
		return pkgerrors.ErrCardAlreadySet
	}
	if u.processor == nil || !u.processor.Accepts(cardNumber) {
		return pkgerrors.ErrInvalidCard
	}
	u.creditCardNumber = cardNumber
	return nil
}

// Pay sends amount to target. The balance is used when it covers the whole
// amount, otherwise the credit card is charged and the balance is left
// untouched. The route is chosen before the amount is validated, so a
// negative amount always goes down the balance route and is rejected there.
func (u *User) Pay(ctx context.Context, target *User, amount float64, note string) (*Payment, error) {
	if target == nil {
		return nil, pkgerrors.ErrNilPaymentUser
	}

	var (
		payment *Payment
		err     error
	)
	if amount <= u.balance {
		payment, err = u.payWithBalance(target, amount, note)
	} else {
		payment, err = u.payWithCard(ctx, target, amount, note)
	}
	if err != nil {
		return nil, err
	}

	u.activities = append(u.activities, NewPayActivity(u, target, amount, note))
	return payment, nil
}

func (u *User) payWithBalance(target *User, amount float64, note string) (*Payment, error) {
	if err := u.checkPayment(target, amount); err != nil {
		return nil, err
	}

	payment := newPayment(amount, u, target, note, SourceBalance)
	target.AddToBalance(amount)
	u.AddToBalance(-amount)
	return payment, nil
}

func (u *User) payWithCard(ctx context.Context, target *User, amount float64, note string) (*Payment, error) {
	if err := u.checkPayment(target, amount); err != nil {
		return nil, err
	}
	if !u.HasCreditCard() {
		return nil, pkgerrors.ErrNoCreditCard
	}
	if u.processor == nil {
		return nil, pkgerrors.ErrProcessorUnavailable
	}

	if err := u.processor.Charge(ctx, u.creditCardNumber, amount); err != nil {
		if !errors.Is(err, pkgerrors.ErrPayment) {
			err = fmt.Errorf("%w: %w", pkgerrors.ErrProcessorUnavailable, err)
		}
		return nil, err
	}

	payment := newPayment(amount, u, target, note, SourceCard)
	target.AddToBalance(amount)
	return payment, nil
}

func (u *User) checkPayment(target *User, amount float64) error {
	if u.username == target.username {
		return pkgerrors.ErrSelfPayment
	}
	if !(amount > 0) {
		return pkgerrors.ErrNonPositiveAmount
	}
	return nil
}

// AddFriend records candidate as a friend of u. Adding the same username
// twice is a no-op. The friendship is one-directional.
func (u *User) AddFriend(candidate *User) bool {
	if candidate == nil || !u.friends.Add(candidate) {
		return false
	}
	u.activities = append(u.activities, NewAddFriendActivity(u, candidate))
	return true
}

func (u *User) IsFriend(username string) bool {
	return u.friends.Contains(username)
}

func (u *User) Friends() []*User {
	return u.friends.List()
}

// RetrieveFeed returns a copy of u's own activities in the order they
// happened. Payments appear only in the payer's feed.
func (u *User) RetrieveFeed() []Activity {
	feed := make([]Activity, len(u.activities))
	copy(feed, u.activities)
	return feed
}
