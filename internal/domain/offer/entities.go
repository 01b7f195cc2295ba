package offer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("offer not found")
	ErrAlreadyAccepted = errors.New("offer already accepted")
)

// Offer is a lender's proposed annual interest rate for a pending loan. A loan
// may collect many offers but at most one is ever accepted.
type Offer struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	OfferID string `gorm:"column:offer_id;type:char(32);not null;uniqueIndex:ux_offers_offer_id_active" json:"offer_id"`
	// FK to loans.id (numeric)
	LoanID     uint64          `gorm:"column:loan_id;not null;index" json:"-"`
	LenderID   string          `gorm:"column:lender_id;type:char(32);not null" json:"lender_id"`
	AnnualRate decimal.Decimal `gorm:"column:annual_rate;type:decimal(5,2);not null" json:"annual_interest_rate"`
	IsAccepted bool            `gorm:"column:is_accepted;default:false" json:"is_accepted"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Offer) TableName() string { return "offers" }
