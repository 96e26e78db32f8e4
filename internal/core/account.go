package core

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Account is a single owner's balance. The balance never goes below zero and
// the owner is fixed at construction. All methods are safe for concurrent use.
type Account struct {
	mu      sync.Mutex
	owner   string
	balance decimal.Decimal
}

// Balance is a point-in-time view of an Account.
type Balance struct {
	Owner  string
	Amount decimal.Decimal
}

func NewAccount(owner string, initialBalance decimal.Decimal) (*Account, error) {
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance %s: %w", FormatAmount(initialBalance), ErrInvalidAmount)
	}

	return &Account{
		owner:   owner,
		balance: initialBalance,
	}, nil
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance.GreaterThanOrEqual(amount)
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("deposit %s: %w", FormatAmount(amount), ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
// A negative amount is rejected before the balance is looked at.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("withdrawal %s: %w", FormatAmount(amount), ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return decimal.Decimal{}, fmt.Errorf("%w: available %s", ErrInsufficientFunds, FormatAmount(a.balance))
	}

	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

func (a *Account) CheckBalance() Balance {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Balance{
		Owner:  a.owner,
		Amount: a.balance,
	}
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
