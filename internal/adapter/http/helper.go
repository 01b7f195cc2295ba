package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	accountDomain "lenme-backend/internal/domain/account"
	loanDomain "lenme-backend/internal/domain/loan"
	offerDomain "lenme-backend/internal/domain/offer"
	paymentDomain "lenme-backend/internal/domain/payment"
	"lenme-backend/internal/ledger"
	accountUC "lenme-backend/internal/usecase/account"
	loanUC "lenme-backend/internal/usecase/loan"
	offerUC "lenme-backend/internal/usecase/offer"
	paymentUC "lenme-backend/internal/usecase/payment"
)

// writeError maps the engine's error taxonomy onto HTTP statuses. Every
// expected condition is recoverable at this boundary; anything unrecognized
// is an opaque storage/internal fault.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, accountDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, offerDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, offerDomain.ErrAlreadyAccepted),
		errors.Is(err, paymentDomain.ErrAlreadyPaid):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrNotPending),
		errors.Is(err, loanDomain.ErrNotFunded),
		errors.Is(err, accountUC.ErrInvalidInput),
		errors.Is(err, loanUC.ErrInvalidInput),
		errors.Is(err, offerUC.ErrInvalidInput),
		errors.Is(err, paymentUC.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
