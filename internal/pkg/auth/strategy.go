package auth

import "time"

// Identity is the authenticated subject encoded into a session token.
type Identity struct {
	UserID int64
	Email  string
}

type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (*Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
