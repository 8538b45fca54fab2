package memory

import (
	"context"
	"testing"

	"orgs/internal/domain/repository"
	"orgs/internal/infra/fixture"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
buildings:
  - {id: 1, address: "Lenina 1", latitude: 55.7558, longitude: 37.6173}
  - {id: 2, address: "Tverskaya 7", latitude: 55.7601, longitude: 37.6186}
  - {id: 3, address: "Bluchera 32/1", latitude: 55.0084, longitude: 82.9357}
activities:
  - {id: 1, name: Food}
  - {id: 2, name: Meat, parentId: 1}
  - {id: 3, name: Dairy, parentId: 1}
organizations:
  - {id: 3, name: Siberia Auto, buildingId: 3}
  - {id: 1, name: Horns and Hooves, buildingId: 1, phones: ["2-222-222"], activityIds: [2, 3]}
  - {id: 2, name: Milk Valley, buildingId: 2, activityIds: [3]}
`

func newTestStore(t *testing.T) *Store {
	t.Helper()

	f, err := fixture.Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	return NewStore(f)
}

func TestStore_FindOrganizationByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	organization, err := store.FindOrganizationByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Horns and Hooves", organization.Name)
	assert.Equal(t, "Lenina 1", organization.Building.Address)

	// Callers cannot mutate the store.
	organization.Phones[0] = "changed"
	again, err := store.FindOrganizationByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2-222-222"}, again.Phones)

	_, err = store.FindOrganizationByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrOrganizationNotFound)
}

func TestStore_SearchOrganizations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ids := func(query repository.OrganizationQuery) ([]int64, int64) {
		organizations, total, err := store.SearchOrganizations(ctx, query)
		require.NoError(t, err)
		result := make([]int64, 0, len(organizations))
		for _, organization := range organizations {
			result = append(result, organization.ID)
		}

		return result, total
	}

	got, total := ids(repository.OrganizationQuery{})
	assert.Equal(t, []int64{1, 2, 3}, got)
	assert.EqualValues(t, 3, total)

	got, _ = ids(repository.OrganizationQuery{NameContains: "valley"})
	assert.Equal(t, []int64{2}, got)

	got, _ = ids(repository.OrganizationQuery{ActivityIDs: []int64{2, 3}})
	assert.Equal(t, []int64{1, 2}, got)

	got, _ = ids(repository.OrganizationQuery{ActivityIDs: []int64{3}, BuildingIDs: []int64{1}})
	assert.Equal(t, []int64{1}, got)

	got, total = ids(repository.OrganizationQuery{Limit: 1, Offset: 1})
	assert.Equal(t, []int64{2}, got)
	assert.EqualValues(t, 3, total)

	got, total = ids(repository.OrganizationQuery{Offset: 10})
	assert.Empty(t, got)
	assert.EqualValues(t, 3, total)
}

func TestStore_FindBuildingsInBound(t *testing.T) {
	store := newTestStore(t)

	buildings, err := store.FindBuildingsInBound(context.Background(), orb.Bound{
		Min: orb.Point{37.6173, 55.7558},
		Max: orb.Point{37.6186, 55.7601},
	})
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.EqualValues(t, 1, buildings[0].ID)
	assert.EqualValues(t, 2, buildings[1].ID)
}

func TestStore_Activities(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, 3)

	activity, err := store.FindActivityByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Dairy", activity.Name)

	_, err = store.FindActivityByID(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrActivityNotFound)

	_, err = store.FindBuildingByID(ctx, 9)
	assert.ErrorIs(t, err, repository.ErrBuildingNotFound)
}

func TestStore_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.SearchOrganizations(ctx, repository.OrganizationQuery{})

	assert.ErrorIs(t, err, context.Canceled)
}
