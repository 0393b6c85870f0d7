package keystone

import (
	"fmt"
	"sync"

	"quantum-portctl/internal/port"
)

// StaticToken is an Authenticator for a pre-issued token.
type StaticToken struct {
	token string
	mu    sync.Mutex
	// issued is set once the token has been handed out
	issued bool
}

// Ensure StaticToken implements the Authenticator port
var _ port.Authenticator = (*StaticToken)(nil)

// NewStaticToken creates an authenticator that always presents token.
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// Authenticate succeeds once per token; a rejected static token cannot be refreshed.
func (s *StaticToken) Authenticate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return fmt.Errorf("no token configured")
	}
	if s.issued {
		return fmt.Errorf("static token was rejected and cannot be refreshed")
	}
	s.issued = true
	return nil
}

func (s *StaticToken) Token() string {
	return s.token
}
