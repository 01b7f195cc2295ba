package schedule

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidTerm = errors.New("term must be a positive number of months")

// Installment is one row of a repayment plan.
type Installment struct {
	Number  int
	Amount  decimal.Decimal
	DueDate time.Time
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Build produces the monthly installment plan for a funded loan.
//
// Interest is flat: every installment charges total * rate/100/12 on the
// original funded total, not on a declining balance, and the principal slice
// is flat as well (total / termMonths). This mirrors the platform's billing
// policy and is intentionally not a declining-balance amortization.
//
// Every installment carries the same amount, rounded once to cents, and is
// due i calendar months after start for i = 1..termMonths.
func Build(total, annualRatePercent decimal.Decimal, termMonths int, start time.Time) ([]Installment, error) {
	if termMonths <= 0 {
		return nil, ErrInvalidTerm
	}

	monthlyRate := annualRatePercent.Div(hundred).Div(twelve)
	principalPortion := total.Div(decimal.NewFromInt(int64(termMonths)))
	interestPortion := total.Mul(monthlyRate)
	amount := principalPortion.Add(interestPortion).Round(2)

	out := make([]Installment, 0, termMonths)
	for i := 1; i <= termMonths; i++ {
		out = append(out, Installment{
			Number:  i,
			Amount:  amount,
			DueDate: start.AddDate(0, i, 0),
		})
	}
	return out, nil
}

// SplitFee divides one payment between the platform and the lender. The
// loan's one-time platform fee is spread evenly across the term; a zero term
// yields a zero platform share. Both shares are rounded to cents
// independently, so their sum may differ from the payment amount by at most
// one cent.
func SplitFee(paymentAmount, loanTotalFee decimal.Decimal, termMonths int) (platformShare, lenderShare decimal.Decimal) {
	feePerInstallment := decimal.Zero
	if termMonths > 0 {
		feePerInstallment = loanTotalFee.Div(decimal.NewFromInt(int64(termMonths)))
	}
	platformShare = feePerInstallment.Round(2)
	lenderShare = paymentAmount.Sub(feePerInstallment).Round(2)
	return platformShare, lenderShare
}
