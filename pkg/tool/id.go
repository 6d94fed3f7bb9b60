package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered UUID used as the primary key of every
// record, so id order follows insertion order.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewInviteToken returns a random invite token. Unlike record IDs these must
// not be guessable from their creation time, so v4 not v7.
func NewInviteToken() string {
	return uuid.NewString()
}
