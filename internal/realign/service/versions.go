package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/idx"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/northpath/realign/pkg/slogx"
)

// VersionEntry is a version with the fields that changed since the version
// before it.
type VersionEntry struct {
	domain.Version
	Changed []string
}

type VersionService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// List returns the realignment's versions newest first. The oldest version
// reports no changes.
func (s *VersionService) List(ctx context.Context, caller domain.Caller, realignmentID string) ([]VersionEntry, error) {
	if _, err := loadForCaller(ctx, s.Store, caller, realignmentID); err != nil {
		return nil, err
	}

	versions, err := s.Store.Versions().ListVersionsByRealignment(ctx, realignmentID)
	if err != nil {
		return nil, err
	}

	out := make([]VersionEntry, len(versions))
	for i, v := range versions {
		out[i] = VersionEntry{Version: v}
		if i+1 < len(versions) {
			out[i].Changed = domain.DiffVersions(versions[i+1], v)
		}
	}
	return out, nil
}

// Restore copies a version into a new realignment named "<name> (Restored)"
// and tagged restored. The note, when given, is kept on the source version.
// Answers and budget come from the current realignment since versions only
// snapshot org and roles.
func (s *VersionService) Restore(ctx context.Context, caller domain.Caller, versionID, note string) (domain.Realignment, error) {
	log := slogx.FromContext(ctx)

	var out domain.Realignment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		v, err := tx.Versions().GetVersionByID(ctx, versionID)
		if err != nil {
			return notFound(err, ErrVersionNotFound)
		}
		src, err := loadForCaller(ctx, tx, caller, v.RealignmentID)
		if err != nil {
			return err
		}

		// A restored copy counts against the owner's tier allowance.
		tier, err := domain.ParseTier(string(src.Tier))
		if err != nil {
			return err
		}
		n, err := tx.Realignments().CountRealignmentsByOwnerTier(ctx, src.OwnerID, src.Tier)
		if err != nil {
			return err
		}
		if !tier.AllowsAnotherAssessment(n) {
			log.Warn("tier assessment limit reached",
				slog.String("tier", string(tier.ID)),
				slog.Int("existing", n),
			)
			return ErrTierLimit
		}

		if note != "" {
			if err := tx.Versions().SetVersionNote(ctx, v.ID, note); err != nil {
				return notFound(err, ErrVersionNotFound)
			}
		}

		now := nowUTC(s.Now)
		out = domain.Realignment{
			ID:         idx.NewAt(now).String(),
			OwnerID:    src.OwnerID,
			OwnerEmail: src.OwnerEmail,
			Org:        domain.OrgData{Name: domain.RestoredName(v.Org.Name), OrgType: v.Org.OrgType},
			Tier:       src.Tier,
			Roles:      v.Roles,
			Answers:    src.Answers,
			Budget:     src.Budget,
			Scores:     scoring.Compute(src.Answers, src.Budget),
			Tag:        domain.RealignmentTagRestored,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return createWithVersion(ctx, tx, out, caller.UserID, "restored from "+v.ID)
	})
	if err != nil {
		return domain.Realignment{}, err
	}

	log.Info("version restored",
		slog.String("version_id", versionID),
		slog.String("realignment_id", out.ID),
	)
	return out, nil
}
