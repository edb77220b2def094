package sqlite

import (
	"context"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
)

type versionsRepo struct {
	q *gen.Queries
}

func (r *versionsRepo) CreateVersion(ctx context.Context, v domain.Version) error {
	roles, err := encodeJSON(nonNil(v.Roles))
	if err != nil {
		return err
	}
	err = r.q.CreateVersion(ctx, gen.CreateVersionParams{
		ID:            v.ID,
		RealignmentID: v.RealignmentID,
		OrgName:       v.Org.Name,
		OrgType:       v.Org.OrgType,
		Roles:         roles,
		AccessedBy:    v.AccessedBy,
		AccessedAt:    utc(v.AccessedAt),
		Note:          v.Note,
	})
	return mapConstraint(err)
}

func (r *versionsRepo) GetVersionByID(ctx context.Context, id string) (domain.Version, error) {
	row, err := r.q.GetVersionByID(ctx, id)
	if err != nil {
		return domain.Version{}, mapNotFound(err)
	}
	return mapVersion(row)
}

func (r *versionsRepo) ListVersionsByRealignment(ctx context.Context, realignmentID string) ([]domain.Version, error) {
	rows, err := r.q.ListVersionsByRealignment(ctx, realignmentID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Version, len(rows))
	for i, row := range rows {
		v, err := mapVersion(row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *versionsRepo) SetVersionNote(ctx context.Context, id, note string) error {
	return mapAffected(r.q.SetVersionNote(ctx, gen.SetVersionNoteParams{Note: note, ID: id}))
}

func (r *versionsRepo) TrimVersions(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	return r.q.TrimVersions(ctx, int64(keep))
}
