package payment

import (
	"context"
	"time"
)

type Repository interface {
	// CreateBatch inserts a whole schedule; callers run it inside the funding
	// transaction so the schedule appears atomically with the debit.
	CreateBatch(ctx context.Context, ps []*Payment) error
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Payment, error)
	GetByLoanAndNumberForUpdate(ctx context.Context, loanID uint64, number int) (*Payment, error)
	// ListByLoanID returns the loan's payments ordered by payment number.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Payment, error)
	CountPendingByLoanID(ctx context.Context, loanID uint64) (int64, error)
	// ListDue returns pending payments on funded loans with due_date <= asOf.
	ListDue(ctx context.Context, asOf time.Time) ([]Payment, error)
	// MarkPaid persists the settled payment with a status compare-and-set:
	// it fails with ErrAlreadyPaid if the row is no longer pending.
	MarkPaid(ctx context.Context, p *Payment) error
}
