package realignsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("json body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusConflict, Header: http.Header{}}
		err := parseErrorResponse(resp, []byte(`{"error":"tier_limit_reached","error_description":"limit"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeTierLimit, apiErr.Code)
		require.Equal(t, "limit", apiErr.Description)
		require.ErrorIs(t, err, ErrTierLimit)
	})

	t.Run("bearer challenge", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusUnauthorized, Header: http.Header{}}
		resp.Header.Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="missing bearer token"`)

		err := parseErrorResponse(resp, nil)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("insufficient scope", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusForbidden, Header: http.Header{}}
		resp.Header.Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="realign:write"`)

		err := parseErrorResponse(resp, []byte("insufficient_scope"))
		require.ErrorIs(t, err, ErrInsufficientScope)
	})

	t.Run("unknown body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadGateway, Header: http.Header{}}
		err := parseErrorResponse(resp, []byte("<html>"))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, ErrorCodeServerError, apiErr.Code)
	})

	t.Run("success", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
		require.NoError(t, parseErrorResponse(resp, nil))
	})
}

func TestAPIErrorIs(t *testing.T) {
	t.Parallel()

	err := ErrNotFound.WithDescription("realignment not found")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, errors.Is(err, ErrForbidden))
	require.Equal(t, "not found", ErrNotFound.Description)
}

func TestSessionChecksScopes(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"realignments":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL + "/")
	session := client.NewSession("tok", ScopeRead)

	_, err := session.Submit(context.Background(), SubmitRequest{})
	require.ErrorIs(t, err, ErrInsufficientScope)
	require.Zero(t, calls)

	list, err := session.ListRealignments(context.Background())
	require.NoError(t, err)
	require.Empty(t, list.Realignments)
	require.Equal(t, 1, calls)

	client.CheckScopes = false
	_, err = session.Submit(context.Background(), SubmitRequest{})
	require.Error(t, err) // server answered 200, not 201
	require.Equal(t, 2, calls)
}

func TestAdminQueryEncode(t *testing.T) {
	t.Parallel()

	require.Empty(t, AdminQuery{}.encode(""))
	require.Equal(t, "?format=csv", AdminQuery{}.encode("csv"))
	require.Equal(t,
		"?limit=10&offset=20&q=state+college&sort=savings&status=complete",
		AdminQuery{Query: "state college", Status: "complete", SortBy: "savings", Limit: 10, Offset: 20}.encode(""),
	)
}
