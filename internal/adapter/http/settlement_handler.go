package http

import (
	"net/http"

	"nexachain-backend/internal/usecase/settlement"

	"github.com/labstack/echo/v4"
)

type SettlementHandler struct{ uc *settlement.Usecase }

func NewSettlementHandler(uc *settlement.Usecase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

type runSettlementReq struct {
	// Optional replay target, canonical date `YYYY-MM-DD`. Empty means today.
	Day string `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

// RunSettlement is the administrative trigger. It shares the orchestrator
// code path with the cron job, so replaying an already-settled day changes
// nothing.
func (h *SettlementHandler) RunSettlement(c echo.Context) error {
	var req runSettlementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	ctx := c.Request().Context()
	var (
		sum *settlement.Summary
		err error
	)
	if req.Day == "" {
		sum, err = h.uc.RunDailySettlement(ctx)
	} else {
		day, perr := h.uc.ParseDay(req.Day)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
		}
		sum, err = h.uc.RunForDay(ctx, day)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, sum)
}
