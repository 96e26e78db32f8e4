package core

import (
	"errors"
)

var (
	ErrInvalidAmount     = errors.New("amount cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
