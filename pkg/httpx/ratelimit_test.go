package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/northpath/realign/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(remote string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})

	t.Run("RemoteAddr without port", func(t *testing.T) {
		require.Equal(t, "unix-socket", httpx.IPKeyExtractor(requestFrom("unix-socket")))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	req := requestFrom("10.0.0.1:1")
	req = req.WithContext(httpx.WithPrincipal(req.Context(), httpx.Principal{UserID: "u-1"}))

	key := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)(req)
	require.Equal(t, "u-1:10.0.0.1", key)

	anon := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)(requestFrom("10.0.0.1:1"))
	require.Equal(t, "10.0.0.1", anon)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over limit", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(httpx.RateLimit{Name: "T", Requests: 3, Window: time.Minute, Burst: 3}, httpx.IPKeyExtractor)(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code, "request %d", i+1)
		}

		rec := serve(h, requestFrom("192.168.1.1:1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimit{Name: "T", Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusTooManyRequests, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.2:1")).Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimit{Name: "T", Requests: 1, Window: time.Minute, Burst: 1}, empty)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("1.1.1.1:1")).Code)
		}
	})

	t.Run("users share nothing", func(t *testing.T) {
		h := httpx.RateLimitByUser(httpx.RateLimit{Name: "T", Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

		as := func(user string) *http.Request {
			req := requestFrom("10.0.0.9:1")
			return req.WithContext(httpx.WithPrincipal(context.Background(), httpx.Principal{UserID: user}))
		}

		require.Equal(t, http.StatusOK, serve(h, as("a")).Code)
		require.Equal(t, http.StatusTooManyRequests, serve(h, as("a")).Code)
		require.Equal(t, http.StatusOK, serve(h, as("b")).Code)
	})
}

func TestRateLimitHeaders(t *testing.T) {
	h := httpx.RateLimitByIP(httpx.RateLimit{Name: "T", Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

	require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)

	rec := serve(h, requestFrom("192.168.1.1:1"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	require.Contains(t, rec.Body.String(), "error_description")
}

func TestRateLimitProfiles(t *testing.T) {
	for _, cfg := range []httpx.RateLimit{httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit} {
		require.Positive(t, cfg.Requests, cfg.Name)
		require.Positive(t, cfg.Window, cfg.Name)
		require.Positive(t, cfg.Burst, cfg.Name)
	}

	require.Less(t, httpx.StrictLimit.Requests, httpx.ModerateLimit.Requests)
	require.Less(t, httpx.ModerateLimit.Requests, httpx.LenientLimit.Requests)
	require.Less(t, httpx.LenientLimit.Requests, httpx.PublicLimit.Requests)
}

func TestRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimit{Name: "TEST", Requests: 10, Window: time.Minute, Burst: 10}

	t.Run("no overrides", func(t *testing.T) {
		require.Equal(t, def, httpx.RateLimitFromEnv(def))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "7")

		got := httpx.RateLimitFromEnv(def)
		require.Equal(t, 50, got.Requests)
		require.Equal(t, 30*time.Second, got.Window)
		require.Equal(t, 7, got.Burst)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "-5")
		t.Setenv("RATELIMIT_TEST_BURST", "lots")

		require.Equal(t, def, httpx.RateLimitFromEnv(def))
	})
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimit{Name: "B", Requests: 1_000_000, Window: time.Minute, Burst: 1000})(okHandler)

	for i := 0; b.Loop(); i++ {
		serve(h, requestFrom(fmt.Sprintf("192.168.%d.%d:1", i%255, (i/255)%255)))
	}
}
