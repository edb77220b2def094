package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/idx"
	"github.com/northpath/realign/pkg/slogx"
)

type ScenarioService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Create adds a scenario when the realignment's tier includes the scenario
// builder and its scenario allowance is not used up.
func (s *ScenarioService) Create(ctx context.Context, caller domain.Caller, realignmentID, title, description string) (domain.Scenario, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Scenario{}, invalid(errScenarioTitle)
	}

	var out domain.Scenario
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := loadForCaller(ctx, tx, caller, realignmentID)
		if err != nil {
			return err
		}
		tier, err := domain.ParseTier(string(r.Tier))
		if err != nil {
			return err
		}
		if !tier.ScenarioBuilder {
			return ErrScenarioBuilderUnavailable
		}

		n, err := tx.Scenarios().CountScenariosByRealignment(ctx, r.ID)
		if err != nil {
			return err
		}
		if !tier.AllowsAnotherScenario(n) {
			log.Warn("tier scenario limit reached",
				slog.String("realignment_id", r.ID),
				slog.Int("existing", n),
			)
			return ErrScenarioLimit
		}

		now := nowUTC(s.Now)
		out = domain.Scenario{
			ID:            idx.NewAt(now).String(),
			RealignmentID: r.ID,
			Title:         title,
			Description:   strings.TrimSpace(description),
			CreatedAt:     now,
		}
		return tx.Scenarios().CreateScenario(ctx, out)
	})
	if err != nil {
		return domain.Scenario{}, err
	}

	log.Info("scenario created", slog.String("scenario_id", out.ID), slog.String("realignment_id", realignmentID))
	return out, nil
}

// List returns the realignment's scenarios oldest first.
func (s *ScenarioService) List(ctx context.Context, caller domain.Caller, realignmentID string) ([]domain.Scenario, error) {
	if _, err := loadForCaller(ctx, s.Store, caller, realignmentID); err != nil {
		return nil, err
	}
	return s.Store.Scenarios().ListScenariosByRealignment(ctx, realignmentID)
}

// Delete removes a scenario from a realignment the caller may change.
func (s *ScenarioService) Delete(ctx context.Context, caller domain.Caller, scenarioID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		sc, err := tx.Scenarios().GetScenarioByID(ctx, scenarioID)
		if err != nil {
			return notFound(err, ErrScenarioNotFound)
		}
		if _, err := loadForCaller(ctx, tx, caller, sc.RealignmentID); err != nil {
			return err
		}
		return notFound(tx.Scenarios().DeleteScenario(ctx, scenarioID), ErrScenarioNotFound)
	})
}
