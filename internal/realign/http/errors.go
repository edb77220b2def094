package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/slogx"
)

// writeError maps a service error to its API response. Unknown errors are
// logged and reported as server_error.
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	apiErr := apiErrorFor(err)
	if apiErr == realignsdk.ErrServerError {
		slogx.FromContext(r.Context()).Error("failed to "+action, slog.Any("error", err))
	}
	apiErr.WriteError(w)
}

func apiErrorFor(err error) *realignsdk.APIError {
	switch {
	case errors.Is(err, httpx.ErrBody):
		return realignsdk.ErrInvalidRequest.WithDescription(err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return realignsdk.ErrInvalidRequest.WithDescription(strings.TrimPrefix(err.Error(), "invalid input: "))
	case errors.Is(err, service.ErrForbidden):
		return realignsdk.ErrForbidden
	case errors.Is(err, service.ErrRealignmentNotFound),
		errors.Is(err, service.ErrVersionNotFound),
		errors.Is(err, service.ErrScenarioNotFound),
		errors.Is(err, service.ErrShareLinkNotFound):
		return realignsdk.ErrNotFound.WithDescription(err.Error())
	case errors.Is(err, service.ErrTierLimit),
		errors.Is(err, service.ErrScenarioLimit):
		return realignsdk.ErrTierLimit.WithDescription(err.Error())
	case errors.Is(err, service.ErrScenarioBuilderUnavailable):
		return realignsdk.ErrFeatureNotInTier.WithDescription(err.Error())
	}
	return realignsdk.ErrServerError
}

func writeInvalid(w http.ResponseWriter, desc string) {
	realignsdk.ErrInvalidRequest.WithDescription(desc).WriteError(w)
}
