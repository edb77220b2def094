package realignsdk

import (
	"fmt"
	"strings"
	"sync"
)

// Session carries a bearer token issued by the identity provider. Tokens
// are not refreshed; call SetToken when the caller obtains a new one.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
	scopes      map[string]bool
}

// NewSession creates a session for accessToken. scope is the token's
// space-delimited scope claim, used for client-side scope checks.
func (c *Client) NewSession(accessToken, scope string) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		scopes:      parseScopes(scope),
	}
}

// SetToken replaces the session's token and scopes.
func (s *Session) SetToken(accessToken, scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.scopes = parseScopes(scope)
}

// HasScope reports whether the session's token was granted scope.
func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// parseScopes parses a space-delimited scope string into a map for fast lookup.
func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

// checkScopes verifies the session holds one of required, unless scope
// checking is disabled on the client.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, scope := range required {
		if s.scopes[scope] {
			return nil
		}
	}
	return ErrInsufficientScope.WithDescription(
		fmt.Sprintf("requires one of: %s", strings.Join(required, ", ")),
	)
}
