package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountDomain "lenme-backend/internal/domain/account"
	loanDomain "lenme-backend/internal/domain/loan"
	domain "lenme-backend/internal/domain/payment"
	"lenme-backend/internal/domain/uow"
	"lenme-backend/internal/ledger"
	"lenme-backend/internal/schedule"
	loanUC "lenme-backend/internal/usecase/loan"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	loans    loanDomain.Repository
	payments domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx}
}

// SettleInput identifies an installment either by its public payment ID or by
// loan ID + payment number.
type SettleInput struct {
	PaymentID     string
	LoanID        string
	PaymentNumber int
}

type BreakdownDTO struct {
	TotalPayment decimal.Decimal `json:"total_payment"`
	PlatformFee  decimal.Decimal `json:"platform_fee"`
	LenderAmount decimal.Decimal `json:"lender_amount"`
}

type SettlementDTO struct {
	Payment       loanUC.PaymentDTO `json:"payment"`
	LoanID        string            `json:"loan_id"`
	LoanStatus    string            `json:"loan_status"`
	Breakdown     BreakdownDTO      `json:"payment_breakdown"`
	LenderBalance decimal.Decimal   `json:"lender_new_balance"`
}

// Settle applies one due installment: debit the borrower for the full amount,
// split it between platform and lender, credit the lender's net share, record
// the breakdown, and flip the loan to completed once no pending payment
// remains. One transaction, all rows locked.
func (u *Usecase) Settle(ctx context.Context, in SettleInput) (*SettlementDTO, error) {
	byID := in.PaymentID != ""
	byNumber := in.LoanID != "" && in.PaymentNumber > 0
	if !byID && !byNumber {
		return nil, ErrInvalidInput
	}
	if u.uow == nil {
		return nil, errors.New("unit of work is required")
	}

	var dto *SettlementDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.lockPayment(ctx, r, in)
		if err != nil {
			return err
		}
		if p.Status == domain.StatusPaid {
			return domain.ErrAlreadyPaid
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, p.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.LenderID == nil {
			return loanDomain.ErrNotFunded
		}

		borrower, err := r.Accounts.GetByAccountIDForUpdate(ctx, l.BorrowerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return accountDomain.ErrNotFound
			}
			return err
		}
		if err := ledger.Debit(borrower, p.Amount); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, borrower); err != nil {
			return err
		}

		platformShare, lenderShare := schedule.SplitFee(p.Amount, l.PlatformFee, l.TermMonths)

		lender, err := r.Accounts.GetByAccountIDForUpdate(ctx, *l.LenderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return accountDomain.ErrNotFound
			}
			return err
		}
		if err := ledger.Credit(lender, lenderShare); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, lender); err != nil {
			return err
		}

		now := time.Now().UTC()
		p.Status = domain.StatusPaid
		p.PaidAt = &now
		p.PlatformFee = platformShare
		p.LenderAmount = lenderShare
		// MarkPaid compare-and-sets on status, the last safeguard against a
		// concurrent settlement of the same row.
		if err := r.Payments.MarkPaid(ctx, p); err != nil {
			return err
		}

		// Completion scan runs inside the same unit of work as the
		// settlement that may have finished the loan.
		pending, err := r.Payments.CountPendingByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if pending == 0 && l.Status == loanDomain.StatusFunded {
			l.Status = loanDomain.StatusCompleted
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		dto = &SettlementDTO{
			Payment:    loanUC.ToPaymentDTO(p),
			LoanID:     l.LoanID,
			LoanStatus: string(l.Status),
			Breakdown: BreakdownDTO{
				TotalPayment: p.Amount,
				PlatformFee:  platformShare,
				LenderAmount: lenderShare,
			},
			LenderBalance: lender.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) lockPayment(ctx context.Context, r uow.Repos, in SettleInput) (*domain.Payment, error) {
	if in.PaymentID != "" {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return p, nil
	}

	l, err := r.Loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	p, err := r.Payments.GetByLoanAndNumberForUpdate(ctx, l.ID, in.PaymentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByLoan returns the loan's payments ordered by number. Read-only.
func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]loanUC.PaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	ps, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]loanUC.PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, loanUC.ToPaymentDTO(&ps[i]))
	}
	return out, nil
}
