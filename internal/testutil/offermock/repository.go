package offermock

import (
	"context"

	domain "lenme-backend/internal/domain/offer"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, o *domain.Offer) error
	GetByOfferIDFn          func(ctx context.Context, offerID string) (*domain.Offer, error)
	GetByOfferIDForUpdateFn func(ctx context.Context, offerID string) (*domain.Offer, error)
	SaveFn                  func(ctx context.Context, o *domain.Offer) error
}

func (m *Repo) Create(ctx context.Context, o *domain.Offer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*domain.Offer, error) {
	if m.GetByOfferIDForUpdateFn != nil {
		return m.GetByOfferIDForUpdateFn(ctx, offerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, o *domain.Offer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}
