package offer

import "context"

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByOfferID(ctx context.Context, offerID string) (*Offer, error)
	// GetByOfferIDForUpdate locks the offer row; acceptance must hold it so
	// two concurrent accepts cannot both pass the is_accepted guard.
	GetByOfferIDForUpdate(ctx context.Context, offerID string) (*Offer, error)
	Save(ctx context.Context, o *Offer) error
}
