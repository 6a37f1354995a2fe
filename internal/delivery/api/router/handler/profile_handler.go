package handler

import (
	"net/http"

	"lifeline/internal/delivery/api/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's profile and device registration
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
	}
}

// ProfileResponse is the body returned by /user/profile
type ProfileResponse struct {
	Profile *entity.Profile `json:"profile"`
}

// RegisterDeviceTokenRequest is the body of /api/devices/token
type RegisterDeviceTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// GetProfile returns the caller's profile document
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), caller.UID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ProfileResponse{Profile: profile})
}

// RegisterDeviceToken stores the push token of the caller's device
func (h *ProfileHandler) RegisterDeviceToken(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.profileUC.RegisterDeviceToken(c.Request().Context(), caller.UID, req.Token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.StatusSuccess)
}
