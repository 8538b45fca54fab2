package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"orgs/config"
	"orgs/internal/domain/entity"
	"orgs/internal/infra/cache"
	"orgs/internal/infra/fixture"
	"orgs/internal/infra/hierarchy"
	"orgs/internal/infra/persistence/memory"
	"orgs/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compositionFixture = `
buildings:
  - {id: 1, address: "Red Square", latitude: 55.7539, longitude: 37.6208}
  - {id: 2, address: "Bolshoi", latitude: 55.7601, longitude: 37.6186}
  - {id: 3, address: "Nevsky", latitude: 59.9343, longitude: 30.3351}
activities:
  - {id: 1, name: "Food"}
  - {id: 2, name: "Dairy", parentId: 1}
  - {id: 3, name: "Milk", parentId: 2}
  - {id: 4, name: "Cars"}
organizations:
  - {id: 1, name: "Alpha Foods", buildingId: 1, activityIds: [1]}
  - {id: 2, name: "Alpha Dairy", buildingId: 2, activityIds: [2]}
  - {id: 3, name: "Beta Milk", buildingId: 3, activityIds: [3]}
  - {id: 4, name: "Alpha Cars", buildingId: 1, activityIds: [4]}
  - {id: 5, name: "Gamma Meat", buildingId: 2, activityIds: [3, 4]}
  - {id: 6, name: "Alpha Bakery", buildingId: 3, activityIds: [2]}
  - {id: 7, name: "Delta Idle", buildingId: 1}
`

func newStoreBackedService(t *testing.T) usecase.OrganizationUsecase {
	t.Helper()

	f, err := fixture.Parse([]byte(compositionFixture))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore(f)
	index := hierarchy.NewIndex(store.ActivityRepository(), logger, time.Hour)
	searchCache := cache.New(cache.Params{Config: cfg, Logger: logger})

	return NewOrganizationService(store.OrganizationRepository(), store.BuildingRepository(), index, searchCache, cfg, logger)
}

func searchIDs(t *testing.T, srv usecase.OrganizationUsecase, input usecase.SearchInput) []int64 {
	t.Helper()

	input.Limit = defaultMaxPageLimit
	page, err := srv.Search(context.Background(), &input)
	require.NoError(t, err)

	ids := make([]int64, 0, len(page.Organizations))
	for _, organization := range page.Organizations {
		ids = append(ids, organization.ID)
	}
	slices.Sort(ids)

	return ids
}

func intersectIDs(a, b []int64) []int64 {
	out := []int64{}
	for _, id := range a {
		if slices.Contains(b, id) {
			out = append(out, id)
		}
	}

	return out
}

func TestOrganizationService_Search_ActivityIncludesDescendants(t *testing.T) {
	srv := newStoreBackedService(t)

	assert.Equal(t, []int64{1, 2, 3, 5, 6}, searchIDs(t, srv, usecase.SearchInput{ActivityID: int64Ptr(1)}))
	assert.Equal(t, []int64{2, 3, 5, 6}, searchIDs(t, srv, usecase.SearchInput{ActivityID: int64Ptr(2)}))
	assert.Equal(t, []int64{3, 5}, searchIDs(t, srv, usecase.SearchInput{ActivityID: int64Ptr(3)}))

	organizations, err := srv.ListByActivity(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, organizations, 5)
}

func TestOrganizationService_Search_FiltersCompose(t *testing.T) {
	srv := newStoreBackedService(t)
	nearCenter := entity.RadiusFilter{Center: entity.Coordinate{Lat: 55.7539, Lon: 37.6208}, Meters: 1500}
	westernBox := entity.RectangleFilter{MinLat: 55, MaxLat: 60, MinLon: 30, MaxLon: 38}

	filters := map[string]usecase.SearchInput{
		"name":     {Name: "alpha"},
		"activity": {ActivityID: int64Ptr(1)},
		"building": {BuildingID: int64Ptr(1)},
		"radius":   {Geo: nearCenter},
		"rect":     {Geo: westernBox},
	}
	merge := func(a, b usecase.SearchInput) usecase.SearchInput {
		if b.Name != "" {
			a.Name = b.Name
		}
		if b.ActivityID != nil {
			a.ActivityID = b.ActivityID
		}
		if b.BuildingID != nil {
			a.BuildingID = b.BuildingID
		}
		if b.Geo != nil {
			a.Geo = b.Geo
		}

		return a
	}

	pairs := [][2]string{
		{"name", "activity"},
		{"name", "radius"},
		{"activity", "radius"},
		{"activity", "rect"},
		{"building", "radius"},
		{"building", "activity"},
		{"name", "rect"},
	}
	for _, pair := range pairs {
		t.Run(pair[0]+"+"+pair[1], func(t *testing.T) {
			left := searchIDs(t, srv, filters[pair[0]])
			right := searchIDs(t, srv, filters[pair[1]])

			assert.Equal(t, intersectIDs(left, right), searchIDs(t, srv, merge(filters[pair[0]], filters[pair[1]])))
			assert.Equal(t, intersectIDs(right, left), searchIDs(t, srv, merge(filters[pair[1]], filters[pair[0]])))
		})
	}

	t.Run("name+activity then radius", func(t *testing.T) {
		nameActivity := merge(filters["name"], filters["activity"])
		first := intersectIDs(searchIDs(t, srv, nameActivity), searchIDs(t, srv, filters["radius"]))
		second := intersectIDs(searchIDs(t, srv, filters["radius"]), searchIDs(t, srv, nameActivity))

		all := searchIDs(t, srv, merge(nameActivity, filters["radius"]))
		assert.Equal(t, []int64{1, 2}, all)
		assert.Equal(t, all, first)
		assert.Equal(t, all, second)
	})
}
