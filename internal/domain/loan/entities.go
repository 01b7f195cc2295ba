package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("loan not found")
	ErrNotPending = errors.New("loan is not open for offers")
	ErrNotFunded  = errors.New("loan is not funded")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFunded    Status = "funded"
	StatusCompleted Status = "completed"
)

// Loan is a borrower's request for funds. Lender, rate, fee, total amount and
// funded timestamp are set together at funding and never before; status only
// moves forward: pending -> funded -> completed.
type Loan struct {
	ID          uint64              `gorm:"primaryKey;column:id" json:"-"`
	LoanID      string              `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BorrowerID  string              `gorm:"size:32;index:idx_loans_borrower_active" json:"borrower_id"`
	LenderID    *string             `gorm:"size:32;index" json:"lender_id"`
	Amount      decimal.Decimal     `gorm:"type:decimal(12,2)" json:"loan_amount"`
	TermMonths  int                 `gorm:"column:term_months" json:"loan_period_months"`
	AnnualRate  decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"annual_interest_rate"`
	PlatformFee decimal.Decimal     `gorm:"type:decimal(12,2);default:0" json:"platform_fee"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(12,2);default:0" json:"total_loan_amount"`
	Status      Status              `gorm:"type:enum('pending','funded','completed');default:'pending'" json:"status"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"-"`
	FundedAt    *time.Time          `json:"funded_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Open reports whether the loan can still receive offers.
func (l *Loan) Open() bool { return l.Status == StatusPending && l.LenderID == nil }
