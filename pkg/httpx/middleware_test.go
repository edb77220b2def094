package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func issue(t *testing.T, signer jwtx.Signer, subject, email string, scopes ...string) string {
	t.Helper()
	tok, err := signer.Sign(jwtx.NewAccessClaims(subject, subject, email, scopes, "iss", nil, time.Minute, time.Now()))
	require.NoError(t, err)
	return tok
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestAuthnAndScopes(t *testing.T) {
	signer, err := jwtx.GenerateEdDSASigner("k")
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(signer.PublicJWK()))
	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: "iss"})

	var seen httpx.Principal
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}),
		httpx.AuthnMiddleware(verifier),
		httpx.RequireAnyScope("realign:read"),
	)

	withToken := func(tok string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/realignments", nil)
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		return req
	}

	t.Run("missing token", func(t *testing.T) {
		rec := serve(h, withToken(""))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("bad token", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, serve(h, withToken("abc.def.ghi")).Code)
	})

	t.Run("missing scope", func(t *testing.T) {
		rec := serve(h, withToken(issue(t, signer, "u1", "", "realign:write")))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
	})

	t.Run("granted", func(t *testing.T) {
		rec := serve(h, withToken(issue(t, signer, "u1", "u1@college.test", "realign:read")))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "u1", seen.UserID)
		require.Equal(t, "u1@college.test", seen.Email)
	})
}

func TestRequireConsultant(t *testing.T) {
	h := httpx.RequireConsultant("northpathstrategies.org")(okHandler)

	as := func(p httpx.Principal) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/summary", nil)
		return req.WithContext(httpx.WithPrincipal(req.Context(), p))
	}

	require.Equal(t, http.StatusForbidden, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	require.Equal(t, http.StatusForbidden, serve(h, as(httpx.Principal{UserID: "u", Email: "dean@college.test"})).Code)
	require.Equal(t, http.StatusOK, serve(h, as(httpx.Principal{UserID: "u", Email: "Jordan@NorthPathStrategies.org"})).Code)
	require.Equal(t, http.StatusOK, serve(h, as(httpx.Principal{UserID: "u", Scopes: []string{httpx.ScopeAdmin}})).Code)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	decode := func(s string) error {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(s))
		return httpx.DecodeJSON(httptest.NewRecorder(), req, &b)
	}

	require.NoError(t, decode(`{"name":"x"}`))
	require.ErrorIs(t, decode(`{"name":"x","extra":1}`), httpx.ErrBody)
	require.ErrorIs(t, decode(`{"name":"x"} {}`), httpx.ErrBody)
	require.ErrorIs(t, decode(``), httpx.ErrBody)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&offset=-1&page=x", nil)
	require.Equal(t, 25, httpx.QueryInt(req, "limit", 10))
	require.Equal(t, 0, httpx.QueryInt(req, "offset", 0))
	require.Equal(t, 3, httpx.QueryInt(req, "page", 3))
	require.Equal(t, 7, httpx.QueryInt(req, "missing", 7))
}
