package account

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "lenme-backend/internal/domain/account"
	"lenme-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateAccountInput struct {
	Username string
	Role     string
	Balance  decimal.Decimal
}

type AccountDTO struct {
	AccountID string          `json:"account_id"`
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// Create provisions an account up-front. The money-movement flows require
// every referenced account to exist already; nothing in them creates one
// lazily.
func (u *Usecase) Create(ctx context.Context, in CreateAccountInput) (*AccountDTO, error) {
	if in.Username == "" {
		return nil, ErrInvalidInput
	}
	role := domain.Role(in.Role)
	if role != domain.RoleBorrower && role != domain.RoleLender {
		return nil, ErrInvalidInput
	}
	if in.Balance.IsNegative() {
		return nil, ErrInvalidInput
	}

	a := &domain.Account{
		AccountID: id.NewID32(),
		Username:  in.Username,
		Role:      role,
		Balance:   in.Balance.Round(2),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, accountID string) (*AccountDTO, error) {
	a, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func toDTO(a *domain.Account) *AccountDTO {
	return &AccountDTO{
		AccountID: a.AccountID,
		Username:  a.Username,
		Role:      string(a.Role),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}
