// Package entity contains the core business objects of the project.
package entity

import "time"

// Profile is the user document kept in the users collection.
type Profile struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	PhotoURL    string     `json:"photoURL,omitempty"`
	FCMToken    string     `json:"-"` // Push token of the user's latest device.
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// DeviceToken pairs a push token with the user that owns it.
type DeviceToken struct {
	UserID string
	Token  string
}
