// Package entity contains the core business objects of the project.
package entity

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UID         string `json:"uid"`          // Identity provider user id.
	Email       string `json:"email"`        // Verified email, when the provider returns one.
	DisplayName string `json:"display_name"` // Name claim from the token, may be empty.
}
