package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMedalFixture(t *testing.T) (*MedalService, *fakeMedalRepo) {
	t.Helper()
	repo := newFakeMedalRepo()
	svc := NewMedalService(repo, zap.NewNop().Sugar(), 5.0, 1000)
	return svc, repo
}

func TestRegisterMedal(t *testing.T) {
	svc, _ := newMedalFixture(t)

	medal, err := svc.Register(context.Background(), "user-1", 35.6812, 139.7671, 8.0, false)
	require.NoError(t, err)
	assert.NotZero(t, medal.MedalNo)
	assert.Equal(t, "user-1", medal.UserID)
	assert.False(t, medal.IsDeleted)
}

func TestRegisterMedalPoorAccuracy(t *testing.T) {
	svc, _ := newMedalFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user-1", 35.0, 139.0, 45.0, false)
	assert.ErrorIs(t, err, ErrPoorAccuracy)

	// The proceed-anyway confirmation bypasses the accuracy gate.
	medal, err := svc.Register(ctx, "user-1", 35.0, 139.0, 45.0, true)
	require.NoError(t, err)
	assert.NotZero(t, medal.MedalNo)

	// No accuracy reading at all is accepted as-is.
	_, err = svc.Register(ctx, "user-1", 35.0, 139.0, 0, false)
	assert.NoError(t, err)
}

func TestSearchWithinRadiusEndToEnd(t *testing.T) {
	svc, _ := newMedalFixture(t)
	ctx := context.Background()

	medal, err := svc.Register(ctx, "user-1", 35.6812, 139.7671, 5.0, false)
	require.NoError(t, err)

	found, err := svc.SearchWithinRadius(ctx, 35.6812, 139.7671, 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, medal.MedalNo, found[0].MedalNo)

	// A center ~111 km north leaves the medal outside the box.
	found, err = svc.SearchWithinRadius(ctx, 36.6812, 139.7671, 5)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchWithinRadiusExcludesDeleted(t *testing.T) {
	svc, repo := newMedalFixture(t)
	ctx := context.Background()

	medal, err := svc.Register(ctx, "user-1", 35.6812, 139.7671, 5.0, false)
	require.NoError(t, err)
	other, err := svc.Register(ctx, "user-2", 35.6815, 139.7675, 5.0, false)
	require.NoError(t, err)

	require.NoError(t, repo.Invalidate(ctx, medal.MedalNo, medal.CreatedAt))

	found, err := svc.SearchWithinRadius(ctx, 35.6812, 139.7671, 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, other.MedalNo, found[0].MedalNo)
	for _, m := range found {
		assert.False(t, m.IsDeleted)
	}
}

func TestSearchWithinRadiusDefaultRadius(t *testing.T) {
	svc, _ := newMedalFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user-1", 35.70, 139.7671, 5.0, false)
	require.NoError(t, err)

	// Zero radius falls back to the configured default (5 km); the medal sits
	// about 2 km from center.
	found, err := svc.SearchWithinRadius(ctx, 35.6812, 139.7671, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestDeleteMedalOwnership(t *testing.T) {
	svc, _ := newMedalFixture(t)
	ctx := context.Background()

	medal, err := svc.Register(ctx, "owner", 35.0, 139.0, 5.0, false)
	require.NoError(t, err)

	err = svc.Delete(ctx, medal.MedalNo, "intruder")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, medal.MedalNo, "owner"))

	err = svc.Delete(ctx, medal.MedalNo, "owner")
	assert.ErrorIs(t, err, ErrMedalNotFound)
}

func TestListByUserSkipsInvalidated(t *testing.T) {
	svc, repo := newMedalFixture(t)
	ctx := context.Background()

	kept, err := svc.Register(ctx, "user-1", 35.0, 139.0, 5.0, false)
	require.NoError(t, err)
	gone, err := svc.Register(ctx, "user-1", 35.1, 139.1, 5.0, false)
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(ctx, gone.MedalNo, gone.CreatedAt))

	medals, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, medals, 1)
	assert.Equal(t, kept.MedalNo, medals[0].MedalNo)
}
