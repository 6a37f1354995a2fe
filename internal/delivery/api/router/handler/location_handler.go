package handler

import (
	"net/http"

	"lifeline/internal/delivery/api/response"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler serves location sharing and nearest-user lookups
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
	}
}

// NearestUsersResponse is the body returned by /api/nearest-users
type NearestUsersResponse struct {
	NearestUsers []proximity.RankedResult `json:"nearest_users"`
}

// UpdateLocation stores the caller's latest position
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req CoordinateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.locationUC.UpdateLocation(c.Request().Context(), caller, req.Position()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.StatusSuccess)
}

// NearestUsers returns the users closest to the given position
func (h *LocationHandler) NearestUsers(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req CoordinateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	users, err := h.locationUC.NearestUsers(c.Request().Context(), caller.UID, req.Position())
	if err != nil {
		return err
	}
	if users == nil {
		users = []proximity.RankedResult{}
	}

	return c.JSON(http.StatusOK, NearestUsersResponse{NearestUsers: users})
}
