package service

import (
	"context"
	"testing"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/cryptox"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/northpath/realign/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Express tier keeps realignments for six months, enterprise forever.
	old := f.submit(t, owner, domain.TierExpressDiagnostic)
	forever := f.submit(t, owner, domain.TierEnterpriseTransformation)

	for i := range 3 {
		_, err := f.realignments.Update(ctx, owner, forever.ID, UpdateInput{
			Org:     forever.Org,
			Roles:   forever.Roles,
			Answers: []scoring.Answer{{ID: "gov-1", Value: scoring.Number(float64(i))}},
		})
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}

	token, _, err := f.shares.Create(ctx, owner, forever.ID, time.Hour)
	require.NoError(t, err)

	f.clock.Advance(7 * 30 * 24 * time.Hour)

	hk := NewHousekeepingService(f.store, slogx.Discard(), time.Minute, 2)
	hk.Now = f.clock.Now
	hk.cleanup(ctx)

	_, err = f.store.Realignments().GetRealignmentByID(ctx, old.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.store.Realignments().GetRealignmentByID(ctx, forever.ID)
	require.NoError(t, err)

	versions, err := f.store.Versions().ListVersionsByRealignment(ctx, forever.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	_, err = f.store.ShareLinks().GetShareLinkByFingerprint(ctx, cryptox.FingerprintToken(token))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeepingStartStop(t *testing.T) {
	f := newFixture(t)

	hk := NewHousekeepingService(f.store, slogx.Discard(), 0, 0)
	require.Equal(t, time.Hour, hk.Interval)

	hk.Start()
	hk.Stop()
}
