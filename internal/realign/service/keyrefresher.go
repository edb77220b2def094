package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/northpath/realign/pkg/jwtx"
)

// KeyRefresher keeps a verification key set in step with the issuer's JWKS
// endpoint. A failed refresh keeps the previous keys.
type KeyRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeyRefresher creates a refresher. A non-positive interval defaults to
// fifteen minutes.
func NewKeyRefresher(keys *jwtx.KeySet, url string, client *http.Client, logger *slog.Logger, interval time.Duration) *KeyRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &KeyRefresher{
		Keys:     keys,
		URL:      url,
		Client:   client,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh downloads the key set once and swaps it in.
func (r *KeyRefresher) Refresh(ctx context.Context) error {
	set, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		return err
	}
	skipped, err := r.Keys.Reset(set)
	if err != nil {
		return err
	}
	if skipped > 0 {
		r.Logger.Warn("skipped unusable jwks keys", "skipped", skipped)
	}
	r.Logger.Debug("verification keys refreshed", "keys", r.Keys.Len())
	return nil
}

// Start refreshes on every tick until Stop is called. The first refresh is
// left to the caller so startup can fail fast.
func (r *KeyRefresher) Start() {
	go r.run()
	r.Logger.Info("key refresher started", "interval", r.Interval, "url", r.URL)
}

// Stop blocks until an in-flight refresh has finished.
func (r *KeyRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("key refresher stopped")
}

func (r *KeyRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Interval)
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Error("failed to refresh verification keys", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
