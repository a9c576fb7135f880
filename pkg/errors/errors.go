package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the models wraps exactly one of these.
var (
	ErrUsername   = errors.New("username error")
	ErrCreditCard = errors.New("credit card error")
	ErrPayment    = errors.New("payment error")
)

var (
	ErrInvalidUsername = fmt.Errorf("%w: username not valid", ErrUsername)

	ErrCardAlreadySet = fmt.Errorf("%w: only one credit card per user", ErrCreditCard)
	ErrInvalidCard    = fmt.Errorf("%w: invalid credit card number", ErrCreditCard)

	ErrSelfPayment          = fmt.Errorf("%w: user cannot pay themselves", ErrPayment)
	ErrNonPositiveAmount    = fmt.Errorf("%w: amount must be a positive number", ErrPayment)
	ErrNoCreditCard         = fmt.Errorf("%w: must have a credit card to make a payment", ErrPayment)
	ErrCardDeclined         = fmt.Errorf("%w: card declined", ErrPayment)
	ErrProcessorUnavailable = fmt.Errorf("%w: card processor unavailable", ErrPayment)

	ErrNilUser        = errors.New("user is nil")
	ErrNilPaymentUser = fmt.Errorf("%w: %w", ErrPayment, ErrNilUser)
)
