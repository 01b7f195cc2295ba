package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lenme-backend/internal/usecase/account"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type createAccountReq struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"user_type" validate:"required,oneof=borrower lender"`
	Balance  string `json:"balance" validate:"omitempty,money"`
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	balance := decimal.Zero
	if req.Balance != "" {
		var err error
		if balance, err = decimal.NewFromString(req.Balance); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid balance"})
		}
	}

	dto, err := h.uc.Create(c.Request().Context(), account.CreateAccountInput{
		Username: req.Username,
		Role:     req.Role,
		Balance:  balance,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
