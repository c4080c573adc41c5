package apiclient

import (
	"context"
	"errors"
	"strings"
)

// ErrNoSession is returned when a call needs a token and none is available.
var ErrNoSession = errors.New("apiclient: not signed in")

// User is the signed-in dashboard user.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	ProviderID string `json:"providerId,omitempty"`
}

// Session is what the host application hands to form submission.
type Session struct {
	Token string
	User  User
}

// AuthProvider supplies the current session. Implementations decide where
// it comes from (a login flow, a CLI flag, a test fixture).
type AuthProvider interface {
	Session(ctx context.Context) (Session, error)
}

// StaticAuth always returns the same session.
type StaticAuth Session

func (s StaticAuth) Session(context.Context) (Session, error) {
	if strings.TrimSpace(s.Token) == "" {
		return Session{}, ErrNoSession
	}
	return Session(s), nil
}
