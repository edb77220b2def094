package sqlite

import (
	"context"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
)

type scenariosRepo struct {
	q *gen.Queries
}

func (r *scenariosRepo) CreateScenario(ctx context.Context, s domain.Scenario) error {
	err := r.q.CreateScenario(ctx, gen.CreateScenarioParams{
		ID:            s.ID,
		RealignmentID: s.RealignmentID,
		Title:         s.Title,
		Description:   s.Description,
		CreatedAt:     utc(s.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *scenariosRepo) GetScenarioByID(ctx context.Context, id string) (domain.Scenario, error) {
	row, err := r.q.GetScenarioByID(ctx, id)
	if err != nil {
		return domain.Scenario{}, mapNotFound(err)
	}
	return mapScenario(row), nil
}

func (r *scenariosRepo) ListScenariosByRealignment(ctx context.Context, realignmentID string) ([]domain.Scenario, error) {
	rows, err := r.q.ListScenariosByRealignment(ctx, realignmentID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Scenario, len(rows))
	for i, row := range rows {
		out[i] = mapScenario(row)
	}
	return out, nil
}

func (r *scenariosRepo) CountScenariosByRealignment(ctx context.Context, realignmentID string) (int, error) {
	n, err := r.q.CountScenariosByRealignment(ctx, realignmentID)
	return int(n), err
}

func (r *scenariosRepo) DeleteScenario(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteScenario(ctx, id))
}
