package domain

import "time"

// Session is the server-side record behind an issued access token.
// A token is only honoured while its session row is unrevoked and
// unexpired, so logout invalidates the token immediately.
type Session struct {
	ID        int64      `json:"id"`
	TokenID   string     `json:"token_id"`
	UserID    int64      `json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Session) ActiveAt(t time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(t)
}
