package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetByIDForUpdate locks by the numeric PK; offers and payments reference
	// loans through it.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	// ListAvailable returns pending loans that have no lender yet.
	ListAvailable(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
