package hierarchy

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orgs/config"
	"orgs/internal/domain/repository"
	"orgs/internal/domain/service"
	"orgs/internal/errors"
	"orgs/internal/infra/metrics"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Activities repository.ActivityRepository
}

// minForcedRefreshAge bounds how often a miss on an existing activity may
// trigger a rebuild ahead of the refresh interval.
const minForcedRefreshAge = 5 * time.Second

// Index serves closures from a snapshot that is rebuilt when it gets older than
// the refresh interval or when an activity missing from it exists in storage.
type Index struct {
	activities      repository.ActivityRepository
	logger          *slog.Logger
	refreshInterval time.Duration
	now             func() time.Time

	mu         sync.RWMutex
	snapshot   *Snapshot
	builtAt    time.Time
	generation uint64

	// refreshMu serializes rebuilds so concurrent misses trigger one query.
	refreshMu sync.Mutex
}

// New creates the activity index used by the query service.
func New(params Params) service.ActivityIndex {
	return NewIndex(params.Activities, params.Logger, params.Config.Hierarchy.RefreshInterval)
}

// NewIndex creates an Index with an explicit refresh interval.
func NewIndex(activities repository.ActivityRepository, logger *slog.Logger, refreshInterval time.Duration) *Index {
	if logger == nil {
		logger = slog.Default()
	}

	return &Index{
		activities:      activities,
		logger:          logger,
		refreshInterval: refreshInterval,
		now:             time.Now,
	}
}

// Closure implements service.ActivityIndex.
func (idx *Index) Closure(ctx context.Context, activityID int64) ([]int64, error) {
	snap, builtAt, generation := idx.current()
	if snap == nil || idx.stale(builtAt) {
		var err error
		if snap, generation, err = idx.refresh(ctx, generation); err != nil {
			return nil, err
		}
	}

	if ids, ok := snap.Closure(activityID); ok {
		return ids, nil
	}

	// The activity may have been added after the snapshot was taken. A point
	// lookup gates the rebuild so unknown IDs never reload the whole table.
	if _, err := idx.activities.FindActivityByID(ctx, activityID); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrapf(repository.ErrActivityNotFound, "activity %d", activityID)
		}

		return nil, errors.Wrapf(err, "failed to look up activity %d", activityID)
	}

	if _, latest, _ := idx.current(); idx.now().Sub(latest) < minForcedRefreshAge {
		// Too recent to rebuild again; the activity resolves to itself until then.
		return []int64{activityID}, nil
	}

	snap, _, err := idx.refresh(ctx, generation)
	if err != nil {
		return nil, err
	}
	if ids, ok := snap.Closure(activityID); ok {
		return ids, nil
	}

	return []int64{activityID}, nil
}

func (idx *Index) current() (*Snapshot, time.Time, uint64) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.snapshot, idx.builtAt, idx.generation
}

func (idx *Index) stale(builtAt time.Time) bool {
	return idx.refreshInterval > 0 && idx.now().Sub(builtAt) >= idx.refreshInterval
}

// refresh rebuilds the snapshot unless another caller already replaced the
// generation the caller observed.
func (idx *Index) refresh(ctx context.Context, seen uint64) (*Snapshot, uint64, error) {
	idx.refreshMu.Lock()
	defer idx.refreshMu.Unlock()

	if snap, _, generation := idx.current(); snap != nil && generation != seen {
		return snap, generation, nil
	}

	activities, err := idx.activities.ListActivities(ctx)
	metrics.RecordHierarchyRefresh(err)
	if err != nil {
		return nil, seen, errors.Wrap(err, "failed to list activities")
	}

	snap := Build(activities)

	idx.mu.Lock()
	idx.snapshot = snap
	idx.builtAt = idx.now()
	idx.generation++
	generation := idx.generation
	idx.mu.Unlock()

	idx.logger.DebugContext(ctx, "Activity hierarchy refreshed",
		slog.Int("activities", snap.Size()),
		slog.Uint64("generation", generation),
	)

	return snap, generation, nil
}
