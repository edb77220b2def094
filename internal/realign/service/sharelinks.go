package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/cryptox"
	"github.com/northpath/realign/pkg/idx"
	"github.com/northpath/realign/pkg/slogx"
)

const (
	DefaultShareTTL = 7 * 24 * time.Hour
	MaxShareTTL     = 30 * 24 * time.Hour
)

type ShareLinkService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Create issues a read-only link to a realignment. The returned token is
// shown once; only its fingerprint is stored. A non-positive ttl uses
// DefaultShareTTL and longer ones are capped at MaxShareTTL.
func (s *ShareLinkService) Create(ctx context.Context, caller domain.Caller, realignmentID string, ttl time.Duration) (string, domain.ShareLink, error) {
	log := slogx.FromContext(ctx)

	r, err := loadForCaller(ctx, s.Store, caller, realignmentID)
	if err != nil {
		return "", domain.ShareLink{}, err
	}

	switch {
	case ttl <= 0:
		ttl = DefaultShareTTL
	case ttl > MaxShareTTL:
		ttl = MaxShareTTL
	}

	token, fingerprint, err := cryptox.NewSecret()
	if err != nil {
		log.Error("failed to generate share token", slog.Any("error", err))
		return "", domain.ShareLink{}, err
	}

	now := nowUTC(s.Now)
	link := domain.ShareLink{
		ID:            idx.NewAt(now).String(),
		RealignmentID: r.ID,
		Fingerprint:   fingerprint,
		CreatedBy:     caller.UserID,
		ExpiresAt:     now.Add(ttl),
		CreatedAt:     now,
	}
	if err := s.Store.ShareLinks().CreateShareLink(ctx, link); err != nil {
		log.Error("failed to store share link", slog.Any("error", err))
		return "", domain.ShareLink{}, err
	}

	log.Info("share link created",
		slog.String("realignment_id", r.ID),
		slog.Time("expires_at", link.ExpiresAt),
	)
	return token, link, nil
}

// Resolve returns the realignment behind an unexpired share token.
func (s *ShareLinkService) Resolve(ctx context.Context, token string) (domain.Realignment, error) {
	if token == "" {
		return domain.Realignment{}, ErrShareLinkNotFound
	}

	link, err := s.Store.ShareLinks().GetShareLinkByFingerprint(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		return domain.Realignment{}, notFound(err, ErrShareLinkNotFound)
	}
	if !cryptox.MatchesFingerprint(token, link.Fingerprint) || link.Expired(nowUTC(s.Now)) {
		return domain.Realignment{}, ErrShareLinkNotFound
	}

	r, err := s.Store.Realignments().GetRealignmentByID(ctx, link.RealignmentID)
	if err != nil {
		return domain.Realignment{}, notFound(err, ErrShareLinkNotFound)
	}
	return r, nil
}
