// Package proximity ranks tracked users by great-circle distance from a requester
// and assembles SOS dispatch records from the closest ones.
package proximity

import (
	"math"
	"slices"
	"strings"
	"time"

	"lifeline/internal/domain/constants"
	domainerrors "lifeline/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	// DefaultLimit is the number of nearest users returned by a ranking.
	DefaultLimit = 4
	// DefaultEarthRadiusKm is the mean Earth radius used by the haversine formula.
	DefaultEarthRadiusKm = 6371.0

	alertIDPrefix = "alert_"
)

// Position is a coordinate whose components may be absent, as received from
// clients and location stores.
type Position struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NewPosition creates a complete Position.
func NewPosition(lat, lng float64) Position {
	return Position{Latitude: &lat, Longitude: &lng}
}

// Coordinate validates the position and returns it as a Coordinate.
func (p Position) Coordinate() (Coordinate, error) {
	if p.Latitude == nil || p.Longitude == nil {
		return Coordinate{}, domainerrors.ErrInvalidInput.WithDetails("Latitude and longitude are required")
	}

	coord := Coordinate{Lat: *p.Latitude, Lng: *p.Longitude}
	if !coord.Valid() {
		return Coordinate{}, domainerrors.ErrInvalidInput.WithDetails("Latitude or longitude out of range")
	}

	return coord, nil
}

// Coordinate is a validated latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Point converts the coordinate to an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// TrackedUser is one entry of a location snapshot.
type TrackedUser struct {
	ID          string
	DisplayName string
	Position    Position
}

// RankedResult is a tracked user annotated with its distance from the requester.
type RankedResult struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DistanceKm  float64 `json:"distance_km"`
}

// SosDispatch is the alert record handed to the alert store and the notifier.
type SosDispatch struct {
	AlertID       string
	RequesterID   string
	Coordinate    Coordinate
	Message       string
	EmergencyType string
	// Recipients is never nil; it is empty when nobody was found nearby.
	Recipients []string
	Degraded   bool
	CreatedAt  time.Time
}

// Config holds the ranking constants.
type Config struct {
	Limit         int
	EarthRadiusKm float64
}

// Option customizes a Ranker.
type Option func(*Ranker)

// WithIDGenerator overrides the generator used for the unique part of alert ids.
func WithIDGenerator(fn func() string) Option {
	return func(r *Ranker) {
		r.newID = fn
	}
}

// WithClock overrides the time source stamped on dispatches.
func WithClock(fn func() time.Time) Option {
	return func(r *Ranker) {
		r.now = fn
	}
}

// Ranker is stateless apart from its constants and is safe for concurrent use.
type Ranker struct {
	limit    int
	radiusKm float64
	newID    func() string
	now      func() time.Time
}

// NewRanker creates a Ranker. Non-positive config values fall back to the defaults.
func NewRanker(cfg Config, opts ...Option) *Ranker {
	r := &Ranker{
		limit:    cfg.Limit,
		radiusKm: cfg.EarthRadiusKm,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	if r.limit <= 0 {
		r.limit = DefaultLimit
	}
	if r.radiusKm <= 0 {
		r.radiusKm = DefaultEarthRadiusKm
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RadiusKm returns the sphere radius used for distances.
func (r *Ranker) RadiusKm() float64 {
	return r.radiusKm
}

// RankNearest returns up to Limit users closest to the requester, nearest first.
// The requester and users with missing or out-of-range coordinates are skipped.
func (r *Ranker) RankNearest(requesterID string, requester Position, users []TrackedUser) ([]RankedResult, error) {
	if requesterID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Requester id is required")
	}

	origin, err := requester.Coordinate()
	if err != nil {
		return nil, err
	}

	results := make([]RankedResult, 0, len(users))
	for _, user := range users {
		if user.ID == requesterID {
			continue
		}

		coord, err := user.Position.Coordinate()
		if err != nil {
			continue
		}

		displayName := user.DisplayName
		if displayName == "" {
			displayName = constants.DefaultDisplayName
		}

		results = append(results, RankedResult{
			UserID:      user.ID,
			DisplayName: displayName,
			Latitude:    coord.Lat,
			Longitude:   coord.Lng,
			DistanceKm:  roundKm(Haversine(origin, coord, r.radiusKm)),
		})
	}

	// Stable so equal distances keep snapshot order.
	slices.SortStableFunc(results, func(a, b RankedResult) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	if len(results) > r.limit {
		results = results[:r.limit]
	}

	return results, nil
}

// BuildSosBroadcast validates an SOS request and selects its recipients.
// It performs no I/O.
func (r *Ranker) BuildSosBroadcast(requesterID string, requester Position, message, emergencyType string, users []TrackedUser) (*SosDispatch, error) {
	origin, err := requester.Coordinate()
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Message is required")
	}

	emergencyType = strings.TrimSpace(emergencyType)
	if emergencyType == "" {
		emergencyType = constants.DefaultEmergencyType
	}

	nearest, err := r.RankNearest(requesterID, requester, users)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0, len(nearest))
	for _, result := range nearest {
		recipients = append(recipients, result.UserID)
	}

	return &SosDispatch{
		AlertID:       alertIDPrefix + requesterID + "_" + r.newID(),
		RequesterID:   requesterID,
		Coordinate:    origin,
		Message:       message,
		EmergencyType: emergencyType,
		Recipients:    recipients,
		Degraded:      len(recipients) == 0,
		CreatedAt:     r.now(),
	}, nil
}

// Haversine returns the great-circle distance in kilometers between two
// coordinates on a sphere of the given radius.
func Haversine(a, b Coordinate, radiusKm float64) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng) - toRadians(a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Rounding can push h slightly above 1 for antipodal points.
	return 2 * radiusKm * math.Asin(math.Sqrt(math.Min(1, h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
