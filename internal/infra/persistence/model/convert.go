// Package model holds the stored document shapes and their conversion to domain entities.
package model

import "lifeline/internal/domain/entity"

// ToAlertDomain converts a stored alert document to a domain Alert.
func ToAlertDomain(id string, data *AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	responses := make(map[string]entity.HelpResponse, len(data.HelpResponses))
	for uid, r := range data.HelpResponses {
		responses[uid] = entity.HelpResponse{
			UserID:    r.UserID,
			UserName:  r.UserName,
			Message:   r.Message,
			Timestamp: r.Timestamp,
		}
	}

	recipients := data.Recipients
	if recipients == nil {
		recipients = make([]string, 0)
	}

	return &entity.Alert{
		ID:            id,
		UserID:        data.UserID,
		UserName:      data.UserName,
		Message:       data.Message,
		EmergencyType: data.EmergencyType,
		Location: entity.AlertLocation{
			Latitude:  data.Location.Latitude,
			Longitude: data.Location.Longitude,
		},
		Status:        data.Status,
		Recipients:    recipients,
		HelpResponses: responses,
		TotalSent:     int(data.TotalSent),
		TotalFailed:   int(data.TotalFailed),
		CreatedAt:     data.CreatedAt,
	}
}

// FromAlertDomain converts a domain Alert to its stored document.
func FromAlertDomain(data *entity.Alert) *AlertModel {
	if data == nil {
		return nil
	}

	responses := make(map[string]HelpResponseModel, len(data.HelpResponses))
	for uid, r := range data.HelpResponses {
		responses[uid] = FromHelpResponseDomain(&r)
	}

	return &AlertModel{
		UserID:        data.UserID,
		UserName:      data.UserName,
		Message:       data.Message,
		EmergencyType: data.EmergencyType,
		Location: LocationModel{
			Latitude:  data.Location.Latitude,
			Longitude: data.Location.Longitude,
		},
		Status:        data.Status,
		Recipients:    data.Recipients,
		HelpResponses: responses,
		TotalSent:     int64(data.TotalSent),
		TotalFailed:   int64(data.TotalFailed),
		CreatedAt:     data.CreatedAt,
	}
}

// FromHelpResponseDomain converts a domain HelpResponse to its stored map entry.
func FromHelpResponseDomain(data *entity.HelpResponse) HelpResponseModel {
	return HelpResponseModel{
		UserID:    data.UserID,
		UserName:  data.UserName,
		Message:   data.Message,
		Timestamp: data.Timestamp,
	}
}

// ToProfileDomain converts a stored user document to a domain Profile.
// The document id wins over a missing uid field.
func ToProfileDomain(id string, data *ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	uid := data.UID
	if uid == "" {
		uid = id
	}

	return &entity.Profile{
		UID:         uid,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		FCMToken:    data.FCMToken,
		CreatedAt:   data.CreatedAt,
		LastLoginAt: data.LastLoginAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
