// Package handler implements the API endpoints on top of the usecases.
package handler

import (
	"math"
	"strconv"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/proximity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CoordinateRequest is the body of every endpoint that takes a position.
// Presence and range are checked by proximity.Position.
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Position converts the request to a domain position.
func (r CoordinateRequest) Position() proximity.Position {
	return proximity.Position{Latitude: r.Latitude, Longitude: r.Longitude}
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return err
		}

		return domainerrors.ErrInvalidInput.WithDetails("Invalid request body")
	}

	return c.Validate(req)
}

// identity returns the caller set by the auth middleware.
func identity(c echo.Context) (*entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok || id.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return id, nil
}

// queryFloat parses an optional float query parameter. Absent parameters
// return nil.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	// ParseFloat accepts "NaN" and "Inf"
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, domainerrors.ErrInvalidInput.WithDetails(name + " must be a finite number")
	}

	return &value, nil
}
