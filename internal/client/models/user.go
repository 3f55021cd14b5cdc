// Package models defines the wire-level data types exchanged with the
// storefront backend. JSON tags follow the backend's field names.
package models

// User is the profile the backend returns alongside a session token.
type User struct {
	ID    string `json:"uid"`
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// AuthResult is the payload of every successful auth endpoint:
// a bearer token plus the owning user's profile.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}
