package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type accountSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	AccountID string         `gorm:"size:32;column:account_id"`
	Username  string         `gorm:"column:username"`
	Role      string         `gorm:"type:text;column:role"` // ← no enum
	Balance   float64        `gorm:"column:balance"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (accountSQLite) TableName() string { return "accounts" }

type loanSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	LoanID      string         `gorm:"size:32;column:loan_id"`
	BorrowerID  string         `gorm:"size:32;column:borrower_id"`
	LenderID    *string        `gorm:"size:32;column:lender_id"`
	Amount      float64        `gorm:"column:amount"`
	TermMonths  int            `gorm:"column:term_months"`
	AnnualRate  *float64       `gorm:"column:annual_rate"`
	PlatformFee float64        `gorm:"column:platform_fee"`
	TotalAmount float64        `gorm:"column:total_amount"`
	Status      string         `gorm:"type:text;column:status"` // ← no enum
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	FundedAt    *time.Time     `gorm:"column:funded_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type offerSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	OfferID    string         `gorm:"size:32;column:offer_id"`
	LoanID     uint64         `gorm:"column:loan_id"`
	LenderID   string         `gorm:"size:32;column:lender_id"`
	AnnualRate float64        `gorm:"column:annual_rate"`
	IsAccepted bool           `gorm:"column:is_accepted"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (offerSQLite) TableName() string { return "offers" }

type paymentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	PaymentID     string         `gorm:"size:32;column:payment_id"`
	LoanID        uint64         `gorm:"column:loan_id"`
	PaymentNumber int            `gorm:"column:payment_number"`
	Amount        float64        `gorm:"column:amount"`
	DueDate       time.Time      `gorm:"column:due_date"`
	Status        string         `gorm:"type:text;column:status"` // ← no enum
	PaidAt        *time.Time     `gorm:"column:paid_at"`
	PlatformFee   float64        `gorm:"column:platform_fee"`
	LenderAmount  float64        `gorm:"column:lender_amount"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&accountSQLite{}, &loanSQLite{}, &offerSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
