package mysql

import (
	"context"
	"time"

	paymentDomain "lenme-backend/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) CreateBatch(ctx context.Context, ps []*paymentDomain.Payment) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_id = ?", paymentID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByLoanAndNumberForUpdate(ctx context.Context, loanID uint64, number int) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ? AND payment_number = ?", loanID, number).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) CountPendingByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("loan_id = ? AND status = ?", loanID, paymentDomain.StatusPending).
		Count(&n)
	return n, res.Error
}

func (r *PaymentRepository) ListDue(ctx context.Context, asOf time.Time) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Joins("JOIN loans ON loans.id = payments.loan_id").
		Where("payments.due_date <= ? AND payments.status = ? AND loans.status = ?",
			asOf, paymentDomain.StatusPending, "funded").
		Order("payments.due_date ASC, payments.id ASC").
		Find(&out)
	return out, res.Error
}

// MarkPaid writes the settled payment guarded by a compare-and-set on status:
// the UPDATE only matches while the row is still pending, so a racing
// settlement that slipped past the in-memory check fails here.
func (r *PaymentRepository) MarkPaid(ctx context.Context, p *paymentDomain.Payment) error {
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("id = ? AND status = ?", p.ID, paymentDomain.StatusPending).
		Updates(map[string]any{
			"status":        p.Status,
			"paid_at":       p.PaidAt,
			"platform_fee":  p.PlatformFee,
			"lender_amount": p.LenderAmount,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return paymentDomain.ErrAlreadyPaid
	}
	return nil
}
