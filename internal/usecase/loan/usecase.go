package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountDomain "lenme-backend/internal/domain/account"
	domain "lenme-backend/internal/domain/loan"
	paymentDomain "lenme-backend/internal/domain/payment"
	"lenme-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	loans    domain.Repository
	accounts accountDomain.Repository
	payments paymentDomain.Repository
}

func NewUsecase(loans domain.Repository, accounts accountDomain.Repository, payments paymentDomain.Repository) *Usecase {
	return &Usecase{loans: loans, accounts: accounts, payments: payments}
}

type CreateLoanInput struct {
	BorrowerID string
	Amount     decimal.Decimal
	TermMonths int
}

type LoanDTO struct {
	LoanID      string              `json:"loan_id"`
	BorrowerID  string              `json:"borrower_id"`
	LenderID    *string             `json:"lender_id"`
	Amount      decimal.Decimal     `json:"loan_amount"`
	TermMonths  int                 `json:"loan_period_months"`
	AnnualRate  decimal.NullDecimal `json:"annual_interest_rate"`
	PlatformFee decimal.Decimal     `json:"platform_fee"`
	TotalAmount decimal.Decimal     `json:"total_loan_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	FundedAt    *time.Time          `json:"funded_at"`
}

type PaymentDTO struct {
	PaymentID     string          `json:"payment_id"`
	PaymentNumber int             `json:"payment_number"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paid_at"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	LenderAmount  decimal.Decimal `json:"lender_amount"`
}

type LoanDetailDTO struct {
	Loan     LoanDTO      `json:"loan"`
	Payments []PaymentDTO `json:"payments"`
}

// Create opens a pending, lenderless loan. The borrower account must already
// exist.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || len(in.BorrowerID) != 32 {
		return nil, ErrInvalidInput
	}
	if !in.Amount.IsPositive() || in.TermMonths <= 0 {
		return nil, ErrInvalidInput
	}

	if _, err := u.accounts.GetByAccountID(ctx, in.BorrowerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountDomain.ErrNotFound
		}
		return nil, err
	}

	l := &domain.Loan{
		LoanID:     id.NewID32(),
		BorrowerID: in.BorrowerID,
		Amount:     in.Amount.Round(2),
		TermMonths: in.TermMonths,
		Status:     domain.StatusPending,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ToDTO(l), nil
}

// Detail returns the loan together with its full ordered payment schedule.
// Read-only.
func (u *Usecase) Detail(ctx context.Context, loanID string) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	ps, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	out := &LoanDetailDTO{Loan: *ToDTO(l), Payments: make([]PaymentDTO, 0, len(ps))}
	for i := range ps {
		out.Payments = append(out.Payments, ToPaymentDTO(&ps[i]))
	}
	return out, nil
}

// ListAvailable returns pending loans still waiting for a lender. Read-only.
func (u *Usecase) ListAvailable(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *ToDTO(&ls[i]))
	}
	return out, nil
}

func ToDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:      l.LoanID,
		BorrowerID:  l.BorrowerID,
		LenderID:    l.LenderID,
		Amount:      l.Amount,
		TermMonths:  l.TermMonths,
		AnnualRate:  l.AnnualRate,
		PlatformFee: l.PlatformFee,
		TotalAmount: l.TotalAmount,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
		FundedAt:    l.FundedAt,
	}
}

func ToPaymentDTO(p *paymentDomain.Payment) PaymentDTO {
	return PaymentDTO{
		PaymentID:     p.PaymentID,
		PaymentNumber: p.PaymentNumber,
		Amount:        p.Amount,
		DueDate:       p.DueDate,
		Status:        string(p.Status),
		PaidAt:        p.PaidAt,
		PlatformFee:   p.PlatformFee,
		LenderAmount:  p.LenderAmount,
	}
}
