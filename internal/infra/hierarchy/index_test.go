package hierarchy

import (
	"context"
	"sync"
	"testing"
	"time"

	"orgs/internal/domain/entity"
	"orgs/internal/domain/repository"
	mockRepo "orgs/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestIndex(repo repository.ActivityRepository, interval time.Duration) (*Index, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	idx := NewIndex(repo, nil, interval)
	idx.now = clock.Now

	return idx, clock
}

func TestIndex_ClosureLoadsOnce(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return(sampleTree(), nil).Once()

	idx, _ := newTestIndex(repo, time.Minute)
	ctx := context.Background()

	ids, err := idx.Closure(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 6, 7, 8}, ids)

	ids, err = idx.Closure(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 7, 8}, ids)
}

func TestIndex_RefreshesWhenStale(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return([]*entity.Activity{activity(1, nil)}, nil).Once()
	repo.EXPECT().ListActivities(mock.Anything).Return([]*entity.Activity{activity(1, nil), activity(2, ptr(1))}, nil).Once()

	idx, clock := newTestIndex(repo, time.Minute)
	ctx := context.Background()

	ids, err := idx.Closure(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	clock.Advance(2 * time.Minute)

	ids, err = idx.Closure(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestIndex_MissingButStoredForcesOneRefresh(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return([]*entity.Activity{activity(1, nil)}, nil).Once()
	repo.EXPECT().ListActivities(mock.Anything).Return([]*entity.Activity{activity(1, nil), activity(2, ptr(1))}, nil).Once()
	repo.EXPECT().FindActivityByID(mock.Anything, int64(2)).Return(activity(2, ptr(1)), nil).Once()

	idx, clock := newTestIndex(repo, time.Hour)
	ctx := context.Background()

	_, err := idx.Closure(ctx, 1)
	require.NoError(t, err)

	clock.Advance(minForcedRefreshAge)

	ids, err := idx.Closure(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	ids, err = idx.Closure(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestIndex_RecentSnapshotIsNotRebuiltOnMiss(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return([]*entity.Activity{activity(1, nil)}, nil).Once()
	repo.EXPECT().FindActivityByID(mock.Anything, int64(2)).Return(activity(2, ptr(1)), nil).Twice()

	idx, _ := newTestIndex(repo, time.Hour)
	ctx := context.Background()

	for range 2 {
		ids, err := idx.Closure(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids)
	}
}

func TestIndex_UnknownActivityDoesNotReload(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return(sampleTree(), nil).Once()
	repo.EXPECT().FindActivityByID(mock.Anything, int64(404)).Return(nil, repository.ErrActivityNotFound).Times(3)

	idx, clock := newTestIndex(repo, time.Hour)
	clock.Advance(minForcedRefreshAge)

	for range 3 {
		_, err := idx.Closure(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
		clock.Advance(minForcedRefreshAge)
	}
}

func TestIndex_LookupErrorOnMiss(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return(sampleTree(), nil).Once()
	repo.EXPECT().FindActivityByID(mock.Anything, int64(404)).Return(nil, assert.AnError).Once()

	idx, _ := newTestIndex(repo, time.Hour)

	_, err := idx.Closure(context.Background(), 404)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, repository.ErrActivityNotFound)
}

func TestIndex_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return(nil, assert.AnError).Once()

	idx, _ := newTestIndex(repo, time.Minute)

	_, err := idx.Closure(context.Background(), 1)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestIndex_ConcurrentReaders(t *testing.T) {
	repo := mockRepo.NewMockActivityRepository(t)
	repo.EXPECT().ListActivities(mock.Anything).Return(sampleTree(), nil).Once()

	idx, _ := newTestIndex(repo, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := idx.Closure(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, []int64{1, 2, 3}, ids)
		}()
	}
	wg.Wait()
}
