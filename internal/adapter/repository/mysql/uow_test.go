package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountDomain "lenme-backend/internal/domain/account"
	loanDomain "lenme-backend/internal/domain/loan"
	"lenme-backend/internal/domain/uow"
	"lenme-backend/pkg/id"
)

func TestUoW_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	accountID := id.NewID32()
	loanID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Accounts.Create(ctx, &accountDomain.Account{
			AccountID: accountID, Username: "alice", Role: accountDomain.RoleBorrower,
			Balance: decimal.RequireFromString("100.00"),
		}); err != nil {
			return err
		}
		return r.Loans.Create(ctx, &loanDomain.Loan{
			LoanID: loanID, BorrowerID: accountID,
			Amount: decimal.RequireFromString("5000.00"), TermMonths: 12,
			Status: loanDomain.StatusPending,
		})
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	// Both writes are visible after commit.
	if _, err := NewAccountRepository(db).GetByAccountID(ctx, accountID); err != nil {
		t.Fatalf("account after commit: %v", err)
	}
	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan after commit: %v", err)
	}
}

func TestUoW_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	accountID := id.NewID32()
	wantErr := errors.New("boom")

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Accounts.Create(ctx, &accountDomain.Account{
			AccountID: accountID, Username: "bob", Role: accountDomain.RoleLender,
			Balance: decimal.RequireFromString("100.00"),
		}); err != nil {
			return err
		}
		return wantErr // force rollback
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("WithinTx err=%v", err)
	}

	_, err = NewAccountRepository(db).GetByAccountID(ctx, accountID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}
