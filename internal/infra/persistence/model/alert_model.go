package model

import "time"

// AlertsCollection is the default Firestore collection for SOS alerts.
const AlertsCollection = "alerts"

// AlertModel is the Firestore document stored under alerts/{alertId}.
type AlertModel struct {
	UserID        string                       `firestore:"userId"`
	UserName      string                       `firestore:"userName"`
	Message       string                       `firestore:"message"`
	EmergencyType string                       `firestore:"emergencyType"`
	Location      LocationModel                `firestore:"location"`
	Status        string                       `firestore:"status"`
	Recipients    []string                     `firestore:"recipients"`
	HelpResponses map[string]HelpResponseModel `firestore:"helpResponses"`
	TotalSent     int64                        `firestore:"totalSent"`
	TotalFailed   int64                        `firestore:"totalFailed"`
	CreatedAt     time.Time                    `firestore:"createdAt"`
	DeliveredAt   *time.Time                   `firestore:"deliveredAt,omitempty"`
}

// LocationModel is the map the web client writes for alert locations.
type LocationModel struct {
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

// HelpResponseModel is one entry of the helpResponses map, keyed by responder id.
type HelpResponseModel struct {
	UserID    string    `firestore:"userId"`
	UserName  string    `firestore:"userName"`
	Message   string    `firestore:"message"`
	Timestamp time.Time `firestore:"timestamp"`
}
