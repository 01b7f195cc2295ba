package uow

import (
	"context"

	"lenme-backend/internal/domain/account"
	"lenme-backend/internal/domain/loan"
	"lenme-backend/internal/domain/offer"
	"lenme-backend/internal/domain/payment"
)

type Repos struct {
	Accounts account.Repository
	Loans    loan.Repository
	Offers   offer.Repository
	Payments payment.Repository
}

// UnitOfWork runs fn against repositories bound to one transaction; fn
// returning an error rolls everything back. Offer acceptance and payment
// settlement rely on this so a debit never lands without its schedule or
// breakdown.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
