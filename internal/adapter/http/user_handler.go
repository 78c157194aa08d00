package http

import (
	"errors"
	"net/http"

	"nexachain-backend/internal/domain/user"
	"nexachain-backend/internal/usecase/useruc"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *useruc.Usecase }

func NewUserHandler(uc *useruc.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerUserReq struct {
	ReferrerID string `json:"referrer_id" validate:"omitempty,hex32"`
}

func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Register(c.Request().Context(), useruc.RegisterInput(req))
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, dto)
	case errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "referrer not found"})
	case errors.Is(err, user.ErrSelfReferral):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user cannot refer themselves"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed"})
	}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("user_id")
	dto, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, dto)
}
