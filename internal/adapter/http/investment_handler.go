package http

import (
	"errors"
	"net/http"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/domain/user"
	"nexachain-backend/internal/usecase/investmentuc"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *investmentuc.Usecase }

func NewInvestmentHandler(uc *investmentuc.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type createInvestmentReq struct {
	UserID string  `json:"user_id" validate:"required,hex32"`
	Plan   string  `json:"plan"    validate:"required"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req createInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), investmentuc.CreateInput(req))
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, dto)
	case errors.Is(err, plan.ErrUnknownPlan):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid investment plan"})
	case errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

func (h *InvestmentHandler) GetInvestment(c echo.Context) error {
	investmentID := c.Param("investment_id")
	dto, err := h.uc.Get(c.Request().Context(), investmentID)
	if err != nil {
		if errors.Is(err, investment.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) ListUserInvestments(c echo.Context) error {
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	list, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"investments": list})
}
