// Package memory serves organizations from a fixture held in memory. It backs
// local runs without a database and the API tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"orgs/config"
	"orgs/internal/domain/entity"
	"orgs/internal/domain/repository"
	"orgs/internal/errors"
	"orgs/internal/infra/fixture"
	"orgs/internal/infra/spatial"

	"github.com/paulmach/orb"
)

const gridCellSizeKm = 1.0

// Store implements the organization, building and activity repositories over
// immutable in-memory data.
type Store struct {
	organizations []*entity.Organization // ordered by ID
	buildings     map[int64]*entity.Building
	activities    []*entity.Activity // ordered by ID
	activityByID  map[int64]*entity.Activity
	grid          *spatial.GridIndex
}

// New loads the configured fixture file, rejecting fixtures that fail validation.
func New(cfg *config.Config) (*Store, error) {
	f, err := fixture.Load(cfg.Storage.FixturePath)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid fixture")
	}

	return NewStore(f), nil
}

// NewStore indexes the fixture.
func NewStore(f *fixture.Fixture) *Store {
	buildings, activities, organizations := f.Entities()

	store := &Store{
		organizations: organizations,
		buildings:     make(map[int64]*entity.Building, len(buildings)),
		activities:    slices.Clone(activities),
		activityByID:  make(map[int64]*entity.Activity, len(activities)),
		grid:          spatial.NewGridIndex(gridCellSizeKm),
	}

	points := make([]spatial.Point, 0, len(buildings))
	for _, building := range buildings {
		store.buildings[building.ID] = building
		points = append(points, spatial.Point{ID: building.ID, Lat: building.Latitude, Lng: building.Longitude})
	}
	store.grid.Build(points)

	for _, activity := range activities {
		store.activityByID[activity.ID] = activity
	}

	slices.SortFunc(store.organizations, func(a, b *entity.Organization) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(store.activities, func(a, b *entity.Activity) int { return cmp.Compare(a.ID, b.ID) })

	return store
}

// OrganizationRepository exposes the store as a repository.OrganizationRepository.
func (s *Store) OrganizationRepository() repository.OrganizationRepository { return s }

// BuildingRepository exposes the store as a repository.BuildingRepository.
func (s *Store) BuildingRepository() repository.BuildingRepository { return s }

// ActivityRepository exposes the store as a repository.ActivityRepository.
func (s *Store) ActivityRepository() repository.ActivityRepository { return s }

// FindOrganizationByID implements repository.OrganizationRepository.
func (s *Store) FindOrganizationByID(ctx context.Context, id int64) (*entity.Organization, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	idx, found := slices.BinarySearchFunc(s.organizations, id, func(o *entity.Organization, id int64) int {
		return cmp.Compare(o.ID, id)
	})
	if !found {
		return nil, repository.ErrOrganizationNotFound
	}

	return cloneOrganization(s.organizations[idx]), nil
}

// SearchOrganizations implements repository.OrganizationRepository.
func (s *Store) SearchOrganizations(ctx context.Context, query repository.OrganizationQuery) ([]*entity.Organization, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	name := strings.ToLower(query.NameContains)
	buildingIDs := toSet(query.BuildingIDs)
	activityIDs := toSet(query.ActivityIDs)

	matched := make([]*entity.Organization, 0)
	for _, organization := range s.organizations {
		if name != "" && !strings.Contains(strings.ToLower(organization.Name), name) {
			continue
		}
		if buildingIDs != nil {
			if _, ok := buildingIDs[organization.BuildingID]; !ok {
				continue
			}
		}
		if activityIDs != nil && !hasActivity(organization, activityIDs) {
			continue
		}
		matched = append(matched, organization)
	}

	total := int64(len(matched))
	start := min(query.Offset, len(matched))
	end := len(matched)
	if query.Limit > 0 {
		end = min(start+query.Limit, len(matched))
	}

	page := make([]*entity.Organization, 0, end-start)
	for _, organization := range matched[start:end] {
		page = append(page, cloneOrganization(organization))
	}

	return page, total, nil
}

// FindBuildingByID implements repository.BuildingRepository.
func (s *Store) FindBuildingByID(ctx context.Context, id int64) (*entity.Building, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	building, ok := s.buildings[id]
	if !ok {
		return nil, repository.ErrBuildingNotFound
	}
	copied := *building

	return &copied, nil
}

// FindBuildingsInBound implements repository.BuildingRepository using the grid index.
func (s *Store) FindBuildingsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Building, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	ids := s.grid.InBound(bound)
	buildings := make([]*entity.Building, 0, len(ids))
	for _, id := range ids {
		copied := *s.buildings[id]
		buildings = append(buildings, &copied)
	}

	return buildings, nil
}

// FindActivityByID implements repository.ActivityRepository.
func (s *Store) FindActivityByID(ctx context.Context, id int64) (*entity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	activity, ok := s.activityByID[id]
	if !ok {
		return nil, repository.ErrActivityNotFound
	}
	copied := *activity

	return &copied, nil
}

// ListActivities implements repository.ActivityRepository.
func (s *Store) ListActivities(ctx context.Context) ([]*entity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	activities := make([]*entity.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		copied := *activity
		activities = append(activities, &copied)
	}

	return activities, nil
}

func toSet(ids []int64) map[int64]struct{} {
	if len(ids) == 0 {
		return nil
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func hasActivity(organization *entity.Organization, ids map[int64]struct{}) bool {
	for _, activity := range organization.Activities {
		if _, ok := ids[activity.ID]; ok {
			return true
		}
	}

	return false
}

func cloneOrganization(organization *entity.Organization) *entity.Organization {
	copied := *organization
	copied.Phones = slices.Clone(organization.Phones)
	copied.Activities = slices.Clone(organization.Activities)
	if organization.Building != nil {
		building := *organization.Building
		copied.Building = &building
	}

	return &copied
}
