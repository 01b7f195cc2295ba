package paymentmock

import (
	"context"
	"time"

	domain "lenme-backend/internal/domain/payment"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn                 func(ctx context.Context, ps []*domain.Payment) error
	GetByPaymentIDForUpdateFn     func(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetByLoanAndNumberForUpdateFn func(ctx context.Context, loanID uint64, number int) (*domain.Payment, error)
	ListByLoanIDFn                func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
	CountPendingByLoanIDFn        func(ctx context.Context, loanID uint64) (int64, error)
	ListDueFn                     func(ctx context.Context, asOf time.Time) ([]domain.Payment, error)
	MarkPaidFn                    func(ctx context.Context, p *domain.Payment) error
}

func (m *Repo) CreateBatch(ctx context.Context, ps []*domain.Payment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ps)
	}
	return nil
}

func (m *Repo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanAndNumberForUpdate(ctx context.Context, loanID uint64, number int) (*domain.Payment, error) {
	if m.GetByLoanAndNumberForUpdateFn != nil {
		return m.GetByLoanAndNumberForUpdateFn(ctx, loanID, number)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) CountPendingByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountPendingByLoanIDFn != nil {
		return m.CountPendingByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) ListDue(ctx context.Context, asOf time.Time) ([]domain.Payment, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, asOf)
	}
	return nil, nil
}

func (m *Repo) MarkPaid(ctx context.Context, p *domain.Payment) error {
	if m.MarkPaidFn != nil {
		return m.MarkPaidFn(ctx, p)
	}
	return nil
}
