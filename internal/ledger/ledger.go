package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"lenme-backend/internal/domain/account"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must not be negative")
)

// InsufficientFundsError carries the shortfall detail so callers can report
// required vs available without re-reading the account.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, available %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// Debit reduces the account balance by amount. The sufficiency check and the
// mutation must sit inside the caller's transaction with the account row
// locked; Debit itself only does the arithmetic.
func Debit(a *account.Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{Required: amount, Available: a.Balance}
	}
	a.Balance = a.Balance.Sub(amount).Round(2)
	return nil
}

// Credit increases the account balance by amount.
func Credit(a *account.Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount).Round(2)
	return nil
}

func HasSufficientFunds(a *account.Account, amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
