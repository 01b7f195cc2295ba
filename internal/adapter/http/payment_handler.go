package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lenme-backend/internal/usecase/payment"
	"lenme-backend/internal/usecase/sweep"
)

type PaymentHandler struct {
	uc    *payment.Usecase
	sweep *sweep.Usecase
}

func NewPaymentHandler(uc *payment.Usecase, sw *sweep.Usecase) *PaymentHandler {
	return &PaymentHandler{uc: uc, sweep: sw}
}

type makePaymentReq struct {
	PaymentID     string `json:"payment_id" validate:"omitempty,hex32"`
	LoanID        string `json:"loan_id" validate:"omitempty,hex32"`
	PaymentNumber int    `json:"payment_number" validate:"omitempty,gt=0"`
}

// MakePayment settles one installment, identified by payment_id or by
// loan_id + payment_number.
func (h *PaymentHandler) MakePayment(c echo.Context) error {
	var req makePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if req.PaymentID == "" && (req.LoanID == "" || req.PaymentNumber <= 0) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "either payment_id or (loan_id and payment_number) are required",
		})
	}

	dto, err := h.uc.Settle(c.Request().Context(), payment.SettleInput{
		PaymentID:     req.PaymentID,
		LoanID:        req.LoanID,
		PaymentNumber: req.PaymentNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoanPayments returns every payment of a loan ordered by number.
func (h *PaymentHandler) ListLoanPayments(c echo.Context) error {
	dtos, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// RunSweep triggers the repayment sweep on demand and returns its summary.
// The background worker runs the same sweep on a schedule.
func (h *PaymentHandler) RunSweep(c echo.Context) error {
	sum, err := h.sweep.Run(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
