package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("payment not found")
	ErrAlreadyPaid = errors.New("payment already made")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Payment is one scheduled installment of a funded loan. PlatformFee and
// LenderAmount stay zero until settlement writes the breakdown; their sum then
// equals Amount within one cent of rounding.
type Payment struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PaymentID     string          `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id_active" json:"payment_id"`
	LoanID        uint64          `gorm:"column:loan_id;not null;index;uniqueIndex:ux_payments_loan_number" json:"-"`
	PaymentNumber int             `gorm:"column:payment_number;not null;uniqueIndex:ux_payments_loan_number" json:"payment_number"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	DueDate       time.Time       `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Status        Status          `gorm:"column:status;type:enum('pending','paid');default:'pending'" json:"status"`
	PaidAt        *time.Time      `gorm:"column:paid_at" json:"paid_at"`
	PlatformFee   decimal.Decimal `gorm:"column:platform_fee;type:decimal(12,2);default:0" json:"platform_fee"`
	LenderAmount  decimal.Decimal `gorm:"column:lender_amount;type:decimal(12,2);default:0" json:"lender_amount"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
