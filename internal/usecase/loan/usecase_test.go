package loan

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountDomain "lenme-backend/internal/domain/account"
	domain "lenme-backend/internal/domain/loan"
	paymentDomain "lenme-backend/internal/domain/payment"
	"lenme-backend/internal/testutil/accountmock"
	"lenme-backend/internal/testutil/loanmock"
	"lenme-backend/internal/testutil/paymentmock"
)

const (
	borrowerID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	loanID     = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func borrowerRepo() *accountmock.Repo {
	return &accountmock.Repo{
		GetByAccountIDFn: func(ctx context.Context, id string) (*accountDomain.Account, error) {
			if id == borrowerID {
				return &accountDomain.Account{AccountID: borrowerID, Role: accountDomain.RoleBorrower}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestCreate_Success(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			if l.CreatedAt.IsZero() {
				l.CreatedAt = time.Now().UTC()
			}
			return nil
		},
	}, borrowerRepo(), &paymentmock.Repo{})

	dto, err := uc.Create(context.Background(), CreateLoanInput{
		BorrowerID: borrowerID,
		Amount:     dec("5000.00"),
		TermMonths: 12,
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(dto.LoanID) != 32 {
		t.Fatalf("LoanID length: %d", len(dto.LoanID))
	}
	if dto.Status != string(domain.StatusPending) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.LenderID != nil {
		t.Fatalf("new loan must have no lender, got %v", *dto.LenderID)
	}
	if dto.AnnualRate.Valid {
		t.Fatal("new loan must have no rate")
	}
}

func TestCreate_RejectsBadInput(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, borrowerRepo(), &paymentmock.Repo{})

	cases := []CreateLoanInput{
		{BorrowerID: "", Amount: dec("5000.00"), TermMonths: 12},
		{BorrowerID: "short", Amount: dec("5000.00"), TermMonths: 12},
		{BorrowerID: borrowerID, Amount: dec("0.00"), TermMonths: 12},
		{BorrowerID: borrowerID, Amount: dec("-100.00"), TermMonths: 12},
		{BorrowerID: borrowerID, Amount: dec("5000.00"), TermMonths: 0},
		{BorrowerID: borrowerID, Amount: dec("5000.00"), TermMonths: -1},
	}
	for i, in := range cases {
		if _, err := uc.Create(context.Background(), in); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestCreate_BorrowerMustExist(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Create must not be called for unknown borrower")
			return nil
		},
	}, &accountmock.Repo{}, &paymentmock.Repo{})

	_, err := uc.Create(context.Background(), CreateLoanInput{
		BorrowerID: "cccccccccccccccccccccccccccccccc",
		Amount:     dec("5000.00"),
		TermMonths: 12,
	})
	if err != accountDomain.ErrNotFound {
		t.Fatalf("err=%v, want account not found", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, borrowerRepo(), &paymentmock.Repo{})
	if _, err := uc.Get(context.Background(), loanID); err != domain.ErrNotFound {
		t.Fatalf("err=%v, want loan not found", err)
	}
}

func TestDetail_IncludesOrderedPayments(t *testing.T) {
	l := &domain.Loan{ID: 7, LoanID: loanID, BorrowerID: borrowerID, Status: domain.StatusFunded}
	uc := NewUsecase(&loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, id string) (*domain.Loan, error) {
			if id != loanID {
				return nil, gorm.ErrRecordNotFound
			}
			return l, nil
		},
	}, borrowerRepo(), &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, id uint64) ([]paymentDomain.Payment, error) {
			if id != 7 {
				t.Fatalf("numeric loan id=%d", id)
			}
			return []paymentDomain.Payment{
				{PaymentNumber: 1, Amount: dec("481.61"), Status: paymentDomain.StatusPaid},
				{PaymentNumber: 2, Amount: dec("481.61"), Status: paymentDomain.StatusPending},
			}, nil
		},
	})

	dto, err := uc.Detail(context.Background(), loanID)
	if err != nil {
		t.Fatalf("Detail err: %v", err)
	}
	if len(dto.Payments) != 2 {
		t.Fatalf("payments=%d", len(dto.Payments))
	}
	if dto.Payments[0].PaymentNumber != 1 || dto.Payments[1].PaymentNumber != 2 {
		t.Fatalf("payments out of order: %+v", dto.Payments)
	}
	if dto.Loan.Status != string(domain.StatusFunded) {
		t.Fatalf("status=%s", dto.Loan.Status)
	}
}

func TestListAvailable(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		ListAvailableFn: func(ctx context.Context) ([]domain.Loan, error) {
			return []domain.Loan{
				{LoanID: loanID, Status: domain.StatusPending},
			}, nil
		},
	}, borrowerRepo(), &paymentmock.Repo{})

	dtos, err := uc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable err: %v", err)
	}
	if len(dtos) != 1 || dtos[0].LoanID != loanID {
		t.Fatalf("dtos=%+v", dtos)
	}
}
