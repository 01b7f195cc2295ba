package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lenme-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID string `json:"borrower_id" validate:"required,hex32"`
	Amount     string `json:"loan_amount" validate:"required,money"`
	TermMonths int    `json:"loan_period_months" validate:"required,gt=0"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_amount"})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID: req.BorrowerID,
		Amount:     amount,
		TermMonths: req.TermMonths,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// GetLoan returns the loan and its full payment schedule.
func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Detail(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListAvailable returns pending loans still waiting for a lender.
func (h *LoanHandler) ListAvailable(c echo.Context) error {
	dtos, err := h.uc.ListAvailable(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
