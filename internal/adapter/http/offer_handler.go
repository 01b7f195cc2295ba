package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"lenme-backend/internal/usecase/offer"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type submitOfferReq struct {
	LoanID     string `json:"loan_id" validate:"required,hex32"`
	LenderID   string `json:"lender_id" validate:"required,hex32"`
	AnnualRate string `json:"annual_interest_rate" validate:"required,rate"`
}

func (h *OfferHandler) SubmitOffer(c echo.Context) error {
	var req submitOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	rate, err := decimal.NewFromString(req.AnnualRate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid annual_interest_rate"})
	}

	dto, err := h.uc.Submit(c.Request().Context(), offer.SubmitOfferInput{
		LoanID:     req.LoanID,
		LenderID:   req.LenderID,
		AnnualRate: rate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type acceptOfferReq struct {
	OfferID string `json:"offer_id" validate:"required,hex32"`
}

// AcceptOffer funds the loan and returns it together with the generated
// payment schedule.
func (h *OfferHandler) AcceptOffer(c echo.Context) error {
	var req acceptOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Accept(c.Request().Context(), offer.AcceptOfferInput{OfferID: req.OfferID})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
