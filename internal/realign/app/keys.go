package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/jwtx"
)

// ErrNoKeySource is returned when neither REALIGN_JWKS nor REALIGN_JWKS_URL
// is configured.
var ErrNoKeySource = errors.New("no token verification keys configured: set REALIGN_JWKS or REALIGN_JWKS_URL")

// InitVerificationKeys loads the identity provider's public keys.
//
// Key sources:
//   - REALIGN_JWKS: an inline JWKS document, loaded once. Used by tests and
//     deployments that pin keys.
//   - REALIGN_JWKS_URL: the issuer's JWKS endpoint, fetched on startup and
//     then refreshed every REALIGN_JWKS_REFRESH.
//
// The returned refresher is nil for inline keys.
func InitVerificationKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*jwtx.KeySet, *service.KeyRefresher, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.JWKS != "":
		set, err := jwtx.ParseJWKS([]byte(cfg.JWKS))
		if err != nil {
			return nil, nil, err
		}
		skipped, err := keys.Reset(set)
		if err != nil {
			return nil, nil, fmt.Errorf("load inline jwks: %w", err)
		}
		logger.Info("verification keys loaded from inline jwks",
			"keys", keys.Len(),
			"skipped", skipped,
		)
		return keys, nil, nil

	case cfg.JWKSURL != "":
		refresher := service.NewKeyRefresher(
			keys,
			cfg.JWKSURL,
			&http.Client{Timeout: 10 * time.Second},
			logger,
			cfg.JWKSRefresh,
		)

		// Fail fast when the issuer is unreachable on startup
		if err := refresher.Refresh(ctx); err != nil {
			return nil, nil, fmt.Errorf("initial jwks fetch: %w", err)
		}
		logger.Info("verification keys fetched", "url", cfg.JWKSURL, "keys", keys.Len())
		return keys, refresher, nil

	default:
		return nil, nil, ErrNoKeySource
	}
}
