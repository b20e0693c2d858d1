// Package model holds the dictionary documents and the request payloads
// accepted by the API.
package model

import "time"

// Base carries the fields every stored document shares.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
