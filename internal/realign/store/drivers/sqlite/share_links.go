package sqlite

import (
	"context"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
)

type shareLinksRepo struct {
	q *gen.Queries
}

func (r *shareLinksRepo) CreateShareLink(ctx context.Context, l domain.ShareLink) error {
	err := r.q.CreateShareLink(ctx, gen.CreateShareLinkParams{
		ID:            l.ID,
		RealignmentID: l.RealignmentID,
		Fingerprint:   l.Fingerprint,
		CreatedBy:     l.CreatedBy,
		ExpiresAt:     utc(l.ExpiresAt),
		CreatedAt:     utc(l.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *shareLinksRepo) GetShareLinkByFingerprint(ctx context.Context, fingerprint string) (domain.ShareLink, error) {
	row, err := r.q.GetShareLinkByFingerprint(ctx, fingerprint)
	if err != nil {
		return domain.ShareLink{}, mapNotFound(err)
	}
	return mapShareLink(row), nil
}

func (r *shareLinksRepo) DeleteExpiredShareLinks(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredShareLinks(ctx, utc(now))
}
