// Package hierarchy resolves activity closures over the bounded-depth activity tree.
package hierarchy

import (
	"slices"

	"orgs/internal/domain/entity"
	"orgs/internal/errors"
)

// Tree integrity errors reported by Validate.
var (
	ErrUnknownParent = errors.New("activity references an unknown parent")
	ErrCycle         = errors.New("activity tree contains a cycle")
	ErrTooDeep       = errors.New("activity tree exceeds the maximum depth")
	ErrDuplicateID   = errors.New("duplicate activity id")
)

// Snapshot is an immutable closure table built from one read of the activity rows.
type Snapshot struct {
	parents  map[int64]*int64
	children map[int64][]int64
	levels   map[int64]int
	closure  map[int64][]int64
}

// Build derives the closure table. Activities whose ancestor chain does not reach
// a root within entity.MaxActivityDepth hops resolve to themselves only.
func Build(activities []*entity.Activity) *Snapshot {
	snap := &Snapshot{
		parents:  make(map[int64]*int64, len(activities)),
		children: make(map[int64][]int64),
		levels:   make(map[int64]int, len(activities)),
		closure:  make(map[int64][]int64, len(activities)),
	}

	for _, activity := range activities {
		snap.parents[activity.ID] = activity.ParentID
	}
	for _, activity := range activities {
		if activity.ParentID != nil {
			snap.children[*activity.ParentID] = append(snap.children[*activity.ParentID], activity.ID)
		}
	}
	for id := range snap.parents {
		snap.levels[id] = snap.level(id)
	}
	for id := range snap.parents {
		snap.closure[id] = snap.descend(id)
	}

	return snap
}

// Closure returns the sorted IDs of the activity and its descendants.
// The second result is false when the activity is unknown to the snapshot.
func (s *Snapshot) Closure(id int64) ([]int64, bool) {
	ids, ok := s.closure[id]
	if !ok {
		return nil, false
	}

	return slices.Clone(ids), true
}

// Level returns the absolute depth of the activity (roots are 1), or 0 when the
// activity is unknown or its ancestor chain is broken, cyclic or too long.
func (s *Snapshot) Level(id int64) int {
	return s.levels[id]
}

// Size returns the number of activities in the snapshot.
func (s *Snapshot) Size() int {
	return len(s.parents)
}

// level walks up at most MaxActivityDepth hops looking for a root.
func (s *Snapshot) level(id int64) int {
	current := id
	for depth := 1; depth <= entity.MaxActivityDepth; depth++ {
		parent, ok := s.parents[current]
		if !ok {
			return 0
		}
		if parent == nil {
			return depth
		}
		current = *parent
	}

	return 0
}

func (s *Snapshot) descend(id int64) []int64 {
	result := []int64{id}
	level := s.levels[id]
	if level == 0 {
		return result
	}

	seen := map[int64]struct{}{id: {}}
	frontier := []int64{id}
	for depth := level; depth < entity.MaxActivityDepth && len(frontier) > 0; depth++ {
		var next []int64
		for _, parent := range frontier {
			for _, child := range s.children[parent] {
				if _, dup := seen[child]; dup {
					continue
				}
				seen[child] = struct{}{}
				result = append(result, child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	slices.Sort(result)

	return result
}

// Validate checks tree integrity: unique IDs, known parents, no cycles and
// depth within entity.MaxActivityDepth. All violations are joined.
func Validate(activities []*entity.Activity) error {
	var errs []error

	parents := make(map[int64]*int64, len(activities))
	for _, activity := range activities {
		if _, dup := parents[activity.ID]; dup {
			errs = append(errs, errors.Wrapf(ErrDuplicateID, "activity %d", activity.ID))

			continue
		}
		parents[activity.ID] = activity.ParentID
	}

	ids := make([]int64, 0, len(parents))
	for id := range parents {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if err := checkChain(id, parents); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func checkChain(id int64, parents map[int64]*int64) error {
	visited := map[int64]struct{}{}
	current := id
	depth := 1
	for {
		visited[current] = struct{}{}
		parent := parents[current]
		if parent == nil {
			break
		}
		if _, ok := parents[*parent]; !ok {
			return errors.Wrapf(ErrUnknownParent, "activity %d -> %d", current, *parent)
		}
		if _, loop := visited[*parent]; loop {
			return errors.Wrapf(ErrCycle, "activity %d", id)
		}
		current = *parent
		depth++
	}

	if depth > entity.MaxActivityDepth {
		return errors.Wrapf(ErrTooDeep, "activity %d is at level %d", id, depth)
	}

	return nil
}
