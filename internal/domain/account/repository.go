package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	// GetByAccountIDForUpdate locks the account row; use inside a transaction
	// whenever the balance is about to be mutated.
	GetByAccountIDForUpdate(ctx context.Context, accountID string) (*Account, error)
	Save(ctx context.Context, a *Account) error
}
