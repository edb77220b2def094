package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/idx"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/northpath/realign/pkg/slogx"
)

// SubmitInput is a new realignment as sent by its owner.
type SubmitInput struct {
	Org     domain.OrgData
	Tier    string
	Roles   []domain.Role
	Answers []scoring.Answer
	Budget  float64
	Note    string
}

// UpdateInput replaces the editable parts of a realignment.
type UpdateInput struct {
	Org     domain.OrgData
	Roles   []domain.Role
	Answers []scoring.Answer
	Budget  float64
	Note    string
}

type RealignmentService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Submit validates, scores and stores a realignment together with its first
// version. The owner's tier allowance is checked in the same transaction.
func (s *RealignmentService) Submit(ctx context.Context, caller domain.Caller, in SubmitInput) (domain.Realignment, error) {
	log := slogx.FromContext(ctx)

	tier, err := domain.ParseTier(in.Tier)
	if err != nil {
		return domain.Realignment{}, invalid(err)
	}
	if err := validateContent(in.Org, in.Roles, in.Budget); err != nil {
		return domain.Realignment{}, err
	}

	now := nowUTC(s.Now)
	r := domain.Realignment{
		ID:         idx.NewAt(now).String(),
		OwnerID:    caller.UserID,
		OwnerEmail: caller.Email,
		Org:        in.Org,
		Tier:       tier.ID,
		Roles:      in.Roles,
		Answers:    in.Answers,
		Budget:     in.Budget,
		Scores:     scoring.Compute(in.Answers, in.Budget),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Realignments().CountRealignmentsByOwnerTier(ctx, caller.UserID, tier.ID)
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
		return createWithVersion(ctx, tx, r, caller.UserID, in.Note)
	})
	if err != nil {
		if !errors.Is(err, ErrTierLimit) {
			log.Error("failed to submit realignment", slog.Any("error", err))
		}
		return domain.Realignment{}, err
	}

	log.Info("realignment submitted",
		slog.String("realignment_id", r.ID),
		slog.String("tier", string(r.Tier)),
		slog.Int("redundancy", r.Scores.Redundancy),
		slog.Int("skipped", len(r.Scores.Skipped)),
	)
	return r, nil
}

// Import stores an uploaded document as a new realignment on tier.
func (s *RealignmentService) Import(ctx context.Context, caller domain.Caller, tier string, doc domain.ImportDocument) (domain.Realignment, error) {
	if err := domain.ValidateImport(doc); err != nil {
		return domain.Realignment{}, invalid(err)
	}
	return s.Submit(ctx, caller, SubmitInput{
		Org:   doc.Org(),
		Tier:  tier,
		Roles: doc.Roles,
		Note:  "imported",
	})
}

// Get returns a realignment its owner or a consultant may see.
func (s *RealignmentService) Get(ctx context.Context, caller domain.Caller, id string) (domain.Realignment, error) {
	return loadForCaller(ctx, s.Store, caller, id)
}

// ListMine returns the caller's realignments, newest first.
func (s *RealignmentService) ListMine(ctx context.Context, caller domain.Caller) ([]domain.Realignment, error) {
	return s.Store.Realignments().ListRealignmentsByOwner(ctx, caller.UserID)
}

// Update replaces org, roles, answers and budget, rescores, and records a
// new version.
func (s *RealignmentService) Update(ctx context.Context, caller domain.Caller, id string, in UpdateInput) (domain.Realignment, error) {
	log := slogx.FromContext(ctx)

	if err := validateContent(in.Org, in.Roles, in.Budget); err != nil {
		return domain.Realignment{}, err
	}

	var out domain.Realignment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := loadForCaller(ctx, tx, caller, id)
		if err != nil {
			return err
		}

		r.Org = in.Org
		r.Roles = in.Roles
		r.Answers = in.Answers
		r.Budget = in.Budget
		r.Scores = scoring.Compute(in.Answers, in.Budget)
		r.UpdatedAt = nowUTC(s.Now)

		if err := tx.Realignments().UpdateRealignment(ctx, r); err != nil {
			return notFound(err, ErrRealignmentNotFound)
		}
		v := domain.VersionOf(r, idx.NewAt(r.UpdatedAt).String(), caller.UserID, in.Note)
		if err := tx.Versions().CreateVersion(ctx, v); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return domain.Realignment{}, err
	}

	log.Info("realignment updated", slog.String("realignment_id", id))
	return out, nil
}

// Delete removes a realignment with its versions, scenarios and share links.
func (s *RealignmentService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadForCaller(ctx, tx, caller, id); err != nil {
			return err
		}
		return notFound(tx.Realignments().DeleteRealignment(ctx, id), ErrRealignmentNotFound)
	})
	if err != nil {
		return err
	}

	log.Info("realignment deleted", slog.String("realignment_id", id))
	return nil
}

// SetFavorite flags or unflags a realignment.
func (s *RealignmentService) SetFavorite(ctx context.Context, caller domain.Caller, id string, favorited bool) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadForCaller(ctx, tx, caller, id); err != nil {
			return err
		}
		return notFound(tx.Realignments().SetFavorite(ctx, id, favorited, nowUTC(s.Now)), ErrRealignmentNotFound)
	})
}

func validateContent(org domain.OrgData, roles []domain.Role, budget float64) error {
	if err := domain.ValidateOrg(org); err != nil {
		return invalid(err)
	}
	if err := domain.ValidateRoles(roles); err != nil {
		return invalid(err)
	}
	if err := scoring.ValidateBudget(budget); err != nil {
		return invalid(err)
	}
	return nil
}

// createWithVersion stores r and its first version inside tx.
func createWithVersion(ctx context.Context, tx store.Tx, r domain.Realignment, accessedBy, note string) error {
	if err := tx.Realignments().CreateRealignment(ctx, r); err != nil {
		return err
	}
	v := domain.VersionOf(r, idx.NewAt(r.UpdatedAt).String(), accessedBy, note)
	return tx.Versions().CreateVersion(ctx, v)
}

// loadForCaller fetches a realignment and checks the caller may use it.
func loadForCaller(ctx context.Context, st store.Store, caller domain.Caller, id string) (domain.Realignment, error) {
	r, err := st.Realignments().GetRealignmentByID(ctx, id)
	if err != nil {
		return domain.Realignment{}, notFound(err, ErrRealignmentNotFound)
	}
	if !caller.CanAccess(r) {
		slogx.FromContext(ctx).Warn("realignment access denied",
			slog.String("realignment_id", id),
			slog.String("caller", caller.UserID),
		)
		return domain.Realignment{}, ErrForbidden
	}
	return r, nil
}
