package httpx

import (
	"context"
	"slices"
	"strings"

	"github.com/northpath/realign/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyPrincipal ctxKey = "principal"
)

// ScopeAdmin grants consultant access regardless of the caller's email domain.
const ScopeAdmin = "realign:admin"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Scopes   []string
}

// HasScope reports whether the principal was granted scope.
func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

// IsConsultant reports whether the principal may use the consultant views:
// either it holds ScopeAdmin or its email (or username) is in domain.
func (p Principal) IsConsultant(domain string) bool {
	if p.HasScope(ScopeAdmin) {
		return true
	}
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@"))
	if domain == "" {
		return false
	}
	for _, addr := range []string{p.Email, p.Username} {
		if strings.HasSuffix(strings.ToLower(addr), "@"+domain) {
			return true
		}
	}
	return false
}

// PrincipalFromClaims maps verified token claims to a Principal.
func PrincipalFromClaims(c jwtx.Claims) Principal {
	return Principal{
		UserID:   c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Scopes:   c.Scopes,
	}
}

// WithPrincipal stores p on ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok
}

func scopesFromCtx(ctx context.Context) []string {
	if p, ok := PrincipalFrom(ctx); ok {
		return p.Scopes
	}
	return nil
}
