package sqlite

import (
	"context"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
	"github.com/northpath/realign/pkg/scoring"
)

type realignmentsRepo struct {
	q *gen.Queries
}

func (r *realignmentsRepo) CreateRealignment(ctx context.Context, re domain.Realignment) error {
	roles, err := encodeJSON(nonNil(re.Roles))
	if err != nil {
		return err
	}
	answers, err := encodeJSON(nonNil(re.Answers))
	if err != nil {
		return err
	}
	skipped, err := encodeJSON(nonNil(re.Scores.Skipped))
	if err != nil {
		return err
	}

	err = r.q.CreateRealignment(ctx, gen.CreateRealignmentParams{
		ID:                re.ID,
		OwnerID:           re.OwnerID,
		OwnerEmail:        re.OwnerEmail,
		OrgName:           re.Org.Name,
		OrgType:           re.Org.OrgType,
		Tier:              string(re.Tier),
		Roles:             roles,
		Answers:           answers,
		Budget:            re.Budget,
		Redundancy:        int64(re.Scores.Redundancy),
		AiReadiness:       int64(re.Scores.AIReadiness),
		EstimatedSavings:  re.Scores.EstimatedSavings,
		Skipped:           skipped,
		ConsultantComment: re.ConsultantComment,
		Tag:               re.Tag,
		Favorited:         re.Favorited,
		CreatedAt:         utc(re.CreatedAt),
		UpdatedAt:         utc(re.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *realignmentsRepo) GetRealignmentByID(ctx context.Context, id string) (domain.Realignment, error) {
	row, err := r.q.GetRealignmentByID(ctx, id)
	if err != nil {
		return domain.Realignment{}, mapNotFound(err)
	}
	return mapRealignment(row)
}

func (r *realignmentsRepo) ListRealignmentsByOwner(ctx context.Context, ownerID string) ([]domain.Realignment, error) {
	rows, err := r.q.ListRealignmentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapRealignments(rows)
}

func (r *realignmentsRepo) CountRealignmentsByOwnerTier(ctx context.Context, ownerID string, tier domain.TierID) (int, error) {
	n, err := r.q.CountRealignmentsByOwnerTier(ctx, gen.CountRealignmentsByOwnerTierParams{
		OwnerID: ownerID,
		Tier:    string(tier),
	})
	return int(n), err
}

func (r *realignmentsRepo) ListRealignments(ctx context.Context, f domain.AdminFilter) ([]domain.Realignment, error) {
	limit := int64(f.Limit)
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	offset := int64(f.Offset)
	if offset < 0 {
		offset = 0
	}

	rows, err := r.q.ListRealignments(ctx, gen.ListRealignmentsParams{
		Query:     f.Query,
		Status:    string(statusOrAll(f.Status)),
		SortBy:    string(f.SortBy),
		RowLimit:  limit,
		RowOffset: offset,
	})
	if err != nil {
		return nil, err
	}
	return mapRealignments(rows)
}

func (r *realignmentsRepo) CountRealignments(ctx context.Context, f domain.AdminFilter) (int, error) {
	n, err := r.q.CountRealignments(ctx, gen.CountRealignmentsParams{
		Query:  f.Query,
		Status: string(statusOrAll(f.Status)),
	})
	return int(n), err
}

func (r *realignmentsRepo) ListScores(ctx context.Context) ([]scoring.Result, error) {
	rows, err := r.q.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]scoring.Result, len(rows))
	for i, row := range rows {
		out[i] = scoring.Result{
			Redundancy:       int(row.Redundancy),
			AIReadiness:      int(row.AiReadiness),
			EstimatedSavings: row.EstimatedSavings,
		}
	}
	return out, nil
}

func (r *realignmentsRepo) UpdateRealignment(ctx context.Context, re domain.Realignment) error {
	roles, err := encodeJSON(nonNil(re.Roles))
	if err != nil {
		return err
	}
	answers, err := encodeJSON(nonNil(re.Answers))
	if err != nil {
		return err
	}
	skipped, err := encodeJSON(nonNil(re.Scores.Skipped))
	if err != nil {
		return err
	}

	return mapAffected(r.q.UpdateRealignment(ctx, gen.UpdateRealignmentParams{
		OrgName:          re.Org.Name,
		OrgType:          re.Org.OrgType,
		Roles:            roles,
		Answers:          answers,
		Budget:           re.Budget,
		Redundancy:       int64(re.Scores.Redundancy),
		AiReadiness:      int64(re.Scores.AIReadiness),
		EstimatedSavings: re.Scores.EstimatedSavings,
		Skipped:          skipped,
		UpdatedAt:        utc(re.UpdatedAt),
		ID:               re.ID,
	}))
}

func (r *realignmentsRepo) SetFavorite(ctx context.Context, id string, favorited bool, now time.Time) error {
	return mapAffected(r.q.SetRealignmentFavorite(ctx, gen.SetRealignmentFavoriteParams{
		Favorited: favorited,
		UpdatedAt: utc(now),
		ID:        id,
	}))
}

func (r *realignmentsRepo) SetConsultantComment(ctx context.Context, id, comment string, now time.Time) error {
	return mapAffected(r.q.SetConsultantComment(ctx, gen.SetConsultantCommentParams{
		ConsultantComment: comment,
		UpdatedAt:         utc(now),
		ID:                id,
	}))
}

func (r *realignmentsRepo) DeleteRealignment(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteRealignment(ctx, id))
}

func (r *realignmentsRepo) DeleteRealignmentsCreatedBefore(ctx context.Context, tier domain.TierID, cutoff time.Time) (int64, error) {
	return r.q.DeleteRealignmentsCreatedBefore(ctx, gen.DeleteRealignmentsCreatedBeforeParams{
		Tier:      string(tier),
		CreatedAt: utc(cutoff),
	})
}

func statusOrAll(s domain.AdminStatus) domain.AdminStatus {
	if s == "" {
		return domain.StatusAll
	}
	return s
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
