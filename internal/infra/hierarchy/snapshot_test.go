package hierarchy

import (
	"testing"

	"orgs/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id int64) *int64 {
	return &id
}

func activity(id int64, parent *int64) *entity.Activity {
	return &entity.Activity{ID: id, Name: "activity", ParentID: parent}
}

func sampleTree() []*entity.Activity {
	return []*entity.Activity{
		activity(1, nil),     // Food
		activity(2, ptr(1)),  // Meat
		activity(3, ptr(1)),  // Dairy
		activity(4, nil),     // Cars
		activity(5, ptr(4)),  // Trucks
		activity(6, ptr(4)),  // Passenger
		activity(7, ptr(6)),  // Spare parts
		activity(8, ptr(6)),  // Accessories
		activity(9, ptr(7)),  // level 4, outside the tree bound
		activity(10, ptr(9)), // level 5
	}
}

func TestSnapshot_Closure(t *testing.T) {
	snap := Build(sampleTree())

	tests := []struct {
		name string
		id   int64
		want []int64
	}{
		{name: "root includes whole subtree", id: 1, want: []int64{1, 2, 3}},
		{name: "root stops at level three", id: 4, want: []int64{4, 5, 6, 7, 8}},
		{name: "middle node", id: 6, want: []int64{6, 7, 8}},
		{name: "leaf at level three", id: 7, want: []int64{7}},
		{name: "too deep resolves to itself", id: 9, want: []int64{9}},
		{name: "deeper still resolves to itself", id: 10, want: []int64{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := snap.Closure(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot_ClosureChain(t *testing.T) {
	snap := Build([]*entity.Activity{
		activity(1, nil),
		activity(2, ptr(1)),
		activity(3, ptr(2)),
	})

	got, ok := snap.Closure(1)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, got)

	assert.Equal(t, 1, snap.Level(1))
	assert.Equal(t, 2, snap.Level(2))
	assert.Equal(t, 3, snap.Level(3))
}

func TestSnapshot_ClosureUnknown(t *testing.T) {
	snap := Build(sampleTree())

	_, ok := snap.Closure(404)

	assert.False(t, ok)
	assert.Equal(t, 0, snap.Level(404))
}

func TestSnapshot_CycleTerminates(t *testing.T) {
	snap := Build([]*entity.Activity{
		activity(1, ptr(3)),
		activity(2, ptr(1)),
		activity(3, ptr(2)),
		activity(4, ptr(4)),
	})

	for _, id := range []int64{1, 2, 3, 4} {
		got, ok := snap.Closure(id)
		require.True(t, ok)
		assert.Equal(t, []int64{id}, got)
		assert.Equal(t, 0, snap.Level(id))
	}
}

func TestSnapshot_ClosureReturnsCopy(t *testing.T) {
	snap := Build(sampleTree())

	first, _ := snap.Closure(1)
	first[0] = 99

	second, _ := snap.Closure(1)
	assert.Equal(t, []int64{1, 2, 3}, second)
}

func TestValidate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		assert.NoError(t, Validate(sampleTree()[:8]))
	})

	t.Run("too deep", func(t *testing.T) {
		err := Validate(sampleTree())
		assert.ErrorIs(t, err, ErrTooDeep)
		assert.ErrorContains(t, err, "activity 9 is at level 4")
	})

	t.Run("cycle", func(t *testing.T) {
		err := Validate([]*entity.Activity{activity(1, ptr(2)), activity(2, ptr(1))})
		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("self parent", func(t *testing.T) {
		assert.ErrorIs(t, Validate([]*entity.Activity{activity(1, ptr(1))}), ErrCycle)
	})

	t.Run("unknown parent", func(t *testing.T) {
		assert.ErrorIs(t, Validate([]*entity.Activity{activity(1, ptr(7))}), ErrUnknownParent)
	})

	t.Run("duplicate id", func(t *testing.T) {
		assert.ErrorIs(t, Validate([]*entity.Activity{activity(1, nil), activity(1, nil)}), ErrDuplicateID)
	})
}
