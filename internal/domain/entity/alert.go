// Package entity contains the core business objects of the project.
package entity

import "time"

// AlertLocation is where an SOS alert was raised.
type AlertLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HelpResponse is one user's answer to an alert.
type HelpResponse struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Alert is a persisted SOS broadcast.
type Alert struct {
	ID            string                  `json:"id"`
	UserID        string                  `json:"userId"`
	UserName      string                  `json:"userName"`
	Message       string                  `json:"message"`
	EmergencyType string                  `json:"emergencyType"`
	Location      AlertLocation           `json:"location"`
	Status        string                  `json:"status"`
	Recipients    []string                `json:"recipients"`
	HelpResponses map[string]HelpResponse `json:"helpResponses"`
	TotalSent     int                     `json:"totalSent"`   // Push notifications accepted by FCM.
	TotalFailed   int                     `json:"totalFailed"` // Push notifications rejected by FCM.
	CreatedAt     time.Time               `json:"createdAt"`
}

// NearbyAlert is an alert annotated for a viewer's nearby feed.
type NearbyAlert struct {
	*Alert
	DistanceKm float64 `json:"distance"`
	IsOwnAlert bool    `json:"isOwnAlert"`
}
