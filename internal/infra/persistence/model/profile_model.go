package model

import "time"

// UsersCollection is the default Firestore collection for user profiles.
const UsersCollection = "users"

// ProfileModel is the Firestore document stored under users/{uid}.
type ProfileModel struct {
	UID         string     `firestore:"uid,omitempty"`
	Email       string     `firestore:"email,omitempty"`
	DisplayName string     `firestore:"displayName,omitempty"`
	PhotoURL    string     `firestore:"photoURL,omitempty"`
	FCMToken    string     `firestore:"fcmToken,omitempty"`
	CreatedAt   *time.Time `firestore:"createdAt,omitempty"`
	LastLoginAt *time.Time `firestore:"lastLoginAt,omitempty"`
	UpdatedAt   *time.Time `firestore:"updatedAt,omitempty"`
}
