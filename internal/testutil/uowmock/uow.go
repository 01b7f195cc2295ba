package uowmock

import (
	"context"

	"lenme-backend/internal/domain/uow"
)

// UoW passes its Repos straight to fn without any real transaction. Set
// WithinTxFn to override, e.g. to simulate a rollback.
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
