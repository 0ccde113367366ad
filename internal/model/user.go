// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other
// languages, but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered account.
//
// WHY PasswordHash WITH json:"-"?
// The `json:"-"` tag tells encoding/json to NEVER serialize this field.
// Even if a handler accidentally encodes a full User into a response, the
// bcrypt hash stays out of the JSON. Stripping the field at the type level
// beats remembering to strip it in every handler.
//
// The email is UNIQUE in the database — one account per address, matched
// exactly as stored (no case folding). The hash is the only credential
// material we keep; the plaintext is discarded the moment it's hashed.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
