package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("account not found")

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
)

// Account holds a user's platform balance. The role is descriptive only; a
// borrower account can receive credits and a lender account can be debited.
type Account struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	AccountID string          `gorm:"size:32;uniqueIndex:ux_accounts_account_id_active" json:"account_id"`
	Username  string          `gorm:"size:64;uniqueIndex:ux_accounts_username_active" json:"username"`
	Role      Role            `gorm:"type:enum('borrower','lender');default:'borrower'" json:"role"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2)" json:"balance"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Account) TableName() string { return "accounts" }
