package realign_test

import (
	"testing"
	"time"

	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/stretchr/testify/require"
)

// TestShareLink shares a realignment and opens it without a token.
func TestShareLink(t *testing.T) {
	baseURL, cleanup := setupRealignContainer(t)
	defer cleanup()

	client := realignsdk.NewClient(baseURL)
	session := ownerSession(t, client)
	ctx := t.Context()

	created, err := session.Submit(ctx, sampleSubmission("monthly-subscription"))
	require.NoError(t, err)

	link, err := session.Share(ctx, created.ID, 48*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, link.Token)
	require.WithinDuration(t, time.Now().Add(48*time.Hour), link.ExpiresAt, 2*time.Minute)

	shared, err := client.GetShared(ctx, link.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, shared.ID)
	require.Equal(t, created.Organization, shared.Organization)
	require.Empty(t, shared.OwnerEmail, "shared view must not expose the owner")

	// Default lifetime is seven days
	defaultLink, err := session.Share(ctx, created.ID, 0)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), defaultLink.ExpiresAt, 2*time.Minute)

	_, err = client.GetShared(ctx, "not-a-real-token")
	require.ErrorIs(t, err, realignsdk.ErrNotFound)

	// Deleting the realignment invalidates its links
	require.NoError(t, session.DeleteRealignment(ctx, created.ID))
	_, err = client.GetShared(ctx, link.Token)
	require.ErrorIs(t, err, realignsdk.ErrNotFound)
}
