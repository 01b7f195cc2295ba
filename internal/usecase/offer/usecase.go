package offer

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountDomain "lenme-backend/internal/domain/account"
	loanDomain "lenme-backend/internal/domain/loan"
	domain "lenme-backend/internal/domain/offer"
	paymentDomain "lenme-backend/internal/domain/payment"
	"lenme-backend/internal/domain/uow"
	"lenme-backend/internal/ledger"
	"lenme-backend/internal/schedule"
	loanUC "lenme-backend/internal/usecase/loan"
	"lenme-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	loans    loanDomain.Repository
	accounts accountDomain.Repository
	offers   domain.Repository
	uow      uow.UnitOfWork

	// Flat funding fee charged once per loan, configurable but never
	// amount-dependent.
	platformFee decimal.Decimal
}

func NewUsecase(loans loanDomain.Repository, accounts accountDomain.Repository, offers domain.Repository, tx uow.UnitOfWork, platformFee decimal.Decimal) *Usecase {
	return &Usecase{loans: loans, accounts: accounts, offers: offers, uow: tx, platformFee: platformFee}
}

type SubmitOfferInput struct {
	LoanID     string
	LenderID   string
	AnnualRate decimal.Decimal
}

type OfferDTO struct {
	OfferID    string          `json:"offer_id"`
	LoanID     string          `json:"loan_id"`
	LenderID   string          `json:"lender_id"`
	AnnualRate decimal.Decimal `json:"annual_interest_rate"`
	IsAccepted bool            `json:"is_accepted"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Submit records a lender's rate offer on a pending loan. The balance check
// here is optimistic only; acceptance re-checks under lock because the
// balance may drift between the two.
func (u *Usecase) Submit(ctx context.Context, in SubmitOfferInput) (*OfferDTO, error) {
	if len(in.LoanID) != 32 || len(in.LenderID) != 32 {
		return nil, ErrInvalidInput
	}
	if !in.AnnualRate.IsPositive() {
		return nil, ErrInvalidInput
	}

	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if !l.Open() {
		return nil, loanDomain.ErrNotPending
	}

	lender, err := u.accounts.GetByAccountID(ctx, in.LenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountDomain.ErrNotFound
		}
		return nil, err
	}

	required := l.Amount.Add(u.platformFee)
	if !ledger.HasSufficientFunds(lender, required) {
		return nil, &ledger.InsufficientFundsError{Required: required, Available: lender.Balance}
	}

	o := &domain.Offer{
		OfferID:    id.NewID32(),
		LoanID:     l.ID,
		LenderID:   lender.AccountID,
		AnnualRate: in.AnnualRate,
	}
	if err := u.offers.Create(ctx, o); err != nil {
		return nil, err
	}

	return &OfferDTO{
		OfferID:    o.OfferID,
		LoanID:     l.LoanID,
		LenderID:   o.LenderID,
		AnnualRate: o.AnnualRate,
		IsAccepted: o.IsAccepted,
		CreatedAt:  o.CreatedAt,
	}, nil
}

type AcceptOfferInput struct {
	OfferID string
}

// Accept funds the loan: it debits the lender for principal + fee, stamps the
// loan with lender/rate/fee/total/fundedAt, flips the offer, and writes the
// full payment schedule. Everything happens in one transaction with the
// offer, loan and lender rows locked, so concurrent accepts on the same loan
// cannot both succeed and a debit can never land without its schedule.
func (u *Usecase) Accept(ctx context.Context, in AcceptOfferInput) (*loanUC.LoanDetailDTO, error) {
	if len(in.OfferID) != 32 {
		return nil, ErrInvalidInput
	}
	if u.uow == nil {
		return nil, errors.New("unit of work is required")
	}

	var dto *loanUC.LoanDetailDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Offers.GetByOfferIDForUpdate(ctx, in.OfferID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if o.IsAccepted {
			return domain.ErrAlreadyAccepted
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, o.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if !l.Open() {
			return loanDomain.ErrNotPending
		}

		lender, err := r.Accounts.GetByAccountIDForUpdate(ctx, o.LenderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return accountDomain.ErrNotFound
			}
			return err
		}

		// Mandatory re-check: the balance may have changed since Submit.
		total := l.Amount.Add(u.platformFee).Round(2)
		if err := ledger.Debit(lender, total); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, lender); err != nil {
			return err
		}

		now := time.Now().UTC()
		l.LenderID = &o.LenderID
		l.AnnualRate = decimal.NewNullDecimal(o.AnnualRate)
		l.PlatformFee = u.platformFee
		l.TotalAmount = total
		l.Status = loanDomain.StatusFunded
		l.FundedAt = &now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		o.IsAccepted = true
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}

		installments, err := schedule.Build(total, o.AnnualRate, l.TermMonths, now)
		if err != nil {
			return err
		}
		batch := make([]*paymentDomain.Payment, 0, len(installments))
		for _, ins := range installments {
			batch = append(batch, &paymentDomain.Payment{
				PaymentID:     id.NewID32(),
				LoanID:        l.ID,
				PaymentNumber: ins.Number,
				Amount:        ins.Amount,
				DueDate:       ins.DueDate,
				Status:        paymentDomain.StatusPending,
			})
		}
		if err := r.Payments.CreateBatch(ctx, batch); err != nil {
			return err
		}

		dto = &loanUC.LoanDetailDTO{Loan: *loanUC.ToDTO(l), Payments: make([]loanUC.PaymentDTO, 0, len(batch))}
		for _, p := range batch {
			dto.Payments = append(dto.Payments, loanUC.ToPaymentDTO(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
