package atm

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrInvalidAction     = errors.New("invalid_action")
)
