package sweep

import (
	"context"
	"errors"
	"log"
	"time"

	loanDomain "lenme-backend/internal/domain/loan"
	paymentDomain "lenme-backend/internal/domain/payment"
	"lenme-backend/internal/ledger"
	paymentUC "lenme-backend/internal/usecase/payment"
)

// Settler is the slice of the payment usecase the sweep needs.
type Settler interface {
	Settle(ctx context.Context, in paymentUC.SettleInput) (*paymentUC.SettlementDTO, error)
}

type Usecase struct {
	payments paymentDomain.Repository
	settler  Settler
}

func NewUsecase(payments paymentDomain.Repository, settler Settler) *Usecase {
	return &Usecase{payments: payments, settler: settler}
}

type Summary struct {
	Timestamp        time.Time `json:"timestamp"`
	TotalDue         int       `json:"total_due_payments"`
	Processed        int       `json:"processed_payments"`
	Failed           int       `json:"failed_payments"`
	CompletedLoanIDs []string  `json:"completed_loans"`
}

// Run settles every due pending installment on a funded loan. Each settlement
// is its own transaction: an installment the borrower cannot afford is
// counted, logged and skipped, never retried in the same sweep and never
// fatal to the rest. Skipped installments stay due and are picked up again on
// the next run.
func (u *Usecase) Run(ctx context.Context) (*Summary, error) {
	due, err := u.payments.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	sum := &Summary{TotalDue: len(due), CompletedLoanIDs: []string{}}
	for i := range due {
		p := &due[i]
		res, err := u.settler.Settle(ctx, paymentUC.SettleInput{PaymentID: p.PaymentID})
		switch {
		case err == nil:
			sum.Processed++
			if res.LoanStatus == string(loanDomain.StatusCompleted) {
				sum.CompletedLoanIDs = append(sum.CompletedLoanIDs, res.LoanID)
			}
		case errors.Is(err, paymentDomain.ErrAlreadyPaid):
			// Lost a race with a manual payment; nothing to do.
		case errors.Is(err, ledger.ErrInsufficientFunds):
			sum.Failed++
			log.Printf("sweep: payment %s skipped: %v", p.PaymentID, err)
		default:
			sum.Failed++
			log.Printf("sweep: payment %s failed: %v", p.PaymentID, err)
		}
	}
	sum.Timestamp = time.Now().UTC()
	return sum, nil
}
