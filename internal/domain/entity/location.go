// Package entity contains the core business objects of the project.
package entity

import "time"

// UserLocation is a user's last reported position as written to the location store.
type UserLocation struct {
	UserID      string    `json:"-"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DisplayName string    `json:"displayName"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
