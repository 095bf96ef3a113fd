package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCollectionFixture(t *testing.T) (*CollectionService, *fakeCollectionRepo) {
	t.Helper()
	repo := newFakeCollectionRepo()
	svc := NewCollectionService(repo, zap.NewNop().Sugar())
	return svc, repo
}

func TestCollectMedal(t *testing.T) {
	svc, _ := newCollectionFixture(t)

	collection, err := svc.Collect(context.Background(), "user-1", 42)
	require.NoError(t, err)
	assert.NotZero(t, collection.CollectionID)
	assert.Equal(t, int64(42), collection.MedalNo)
}

func TestCollectMedalDuplicate(t *testing.T) {
	svc, _ := newCollectionFixture(t)
	ctx := context.Background()

	_, err := svc.Collect(ctx, "user-1", 42)
	require.NoError(t, err)

	_, err = svc.Collect(ctx, "user-1", 42)
	assert.ErrorIs(t, err, ErrDuplicateCollection)

	// A different user collecting the same medal is fine.
	_, err = svc.Collect(ctx, "user-2", 42)
	assert.NoError(t, err)
}

func TestCollectUncollectRoundTrip(t *testing.T) {
	svc, _ := newCollectionFixture(t)
	ctx := context.Background()

	_, err := svc.Collect(ctx, "user-1", 42)
	require.NoError(t, err)

	require.NoError(t, svc.Uncollect(ctx, "user-1", 42))

	collected, err := svc.IsCollected(ctx, "user-1", 42)
	require.NoError(t, err)
	assert.False(t, collected)

	// Uncollecting an already absent pair is a success.
	assert.NoError(t, svc.Uncollect(ctx, "user-1", 42))
}

func TestListByUserNewestFirst(t *testing.T) {
	svc, repo := newCollectionFixture(t)
	ctx := context.Background()

	for i, no := range []int64{1, 2, 3} {
		c, err := svc.Collect(ctx, "user-1", no)
		require.NoError(t, err)
		// Spread collection times so ordering is deterministic.
		repo.collections[collectionKey{"user-1", no}].CollectedAt =
			c.CollectedAt.Add(time.Duration(i) * time.Minute)
	}
	_, err := svc.Collect(ctx, "user-2", 1)
	require.NoError(t, err)

	collections, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, collections, 3)
	assert.Equal(t, int64(3), collections[0].MedalNo)
	assert.Equal(t, int64(1), collections[2].MedalNo)
}
