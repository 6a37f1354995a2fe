package handler

import (
	"net/http"

	"lifeline/internal/delivery/api/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/proximity"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
}

// AlertHandler serves SOS broadcasts, the nearby alert feed and help responses
type AlertHandler struct {
	alertUC usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
	}
}

// SendSosRequest is the body of /api/send-sos
type SendSosRequest struct {
	CoordinateRequest
	Message       string `json:"message" validate:"max=2000"`
	EmergencyType string `json:"emergencyType" validate:"max=64"`
}

// RespondRequest is the body of /api/alerts/:id/respond
type RespondRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// NearbyAlertsResponse is the body returned by /api/alerts/nearby
type NearbyAlertsResponse struct {
	Alerts []*entity.NearbyAlert `json:"alerts"`
}

// AlertResponse is the body returned by /api/alerts/:id
type AlertResponse struct {
	Alert *entity.Alert `json:"alert"`
}

// SendSos raises an SOS alert to the nearest users
func (h *AlertHandler) SendSos(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req SendSosRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.alertUC.SendSos(c.Request().Context(), caller, &usecase.SendSosInput{
		Position:      req.Position(),
		Message:       req.Message,
		EmergencyType: req.EmergencyType,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// NearbyAlerts lists recent active alerts around the given position
func (h *AlertHandler) NearbyAlerts(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	lat, err := queryFloat(c, "latitude")
	if err != nil {
		return err
	}
	lng, err := queryFloat(c, "longitude")
	if err != nil {
		return err
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return err
	}

	radiusKm := usecase.DefaultNearbyRadiusKm
	if radius != nil {
		radiusKm = *radius
	}

	position := proximity.Position{Latitude: lat, Longitude: lng}
	alerts, err := h.alertUC.NearbyAlerts(c.Request().Context(), caller.UID, position, radiusKm)
	if err != nil {
		return err
	}
	if alerts == nil {
		alerts = []*entity.NearbyAlert{}
	}

	return c.JSON(http.StatusOK, NearbyAlertsResponse{Alerts: alerts})
}

// GetAlert returns one alert with its help responses
func (h *AlertHandler) GetAlert(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return err
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AlertResponse{Alert: alert})
}

// Respond records the caller's help response on an alert
func (h *AlertHandler) Respond(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req RespondRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.alertUC.RespondToAlert(c.Request().Context(), caller, c.Param("id"), req.Message); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.StatusSuccess)
}
