package entity

import "time"

// Identity is a registered email address that can request one-time codes.
type Identity struct {
	Email     string
	CreatedAt time.Time
}

// Challenge is the pending one-time code for an identity. At most one
// challenge exists per identity; issuing a new one replaces it.
type Challenge struct {
	Code     string
	IssuedAt time.Time
}
