// Package fixture reads and checks YAML reference data for the memory store and the seeding tool.
package fixture

import (
	"os"
	"slices"

	"orgs/internal/domain/entity"
	"orgs/internal/errors"
	"orgs/internal/infra/hierarchy"

	"gopkg.in/yaml.v3"
)

// Integrity errors reported by Validate.
var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownBuilding = errors.New("organization references an unknown building")
	ErrUnknownActivity = errors.New("organization references an unknown activity")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrBadCoordinate   = errors.New("building coordinate out of range")
)

// Fixture is the on-disk reference data set.
type Fixture struct {
	Buildings     []Building     `yaml:"buildings"`
	Activities    []Activity     `yaml:"activities"`
	Organizations []Organization `yaml:"organizations"`
}

// Building is a fixture row for the buildings table.
type Building struct {
	ID        int64   `yaml:"id"`
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Activity is a fixture row for the activities table.
type Activity struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	ParentID *int64 `yaml:"parentId"`
}

// Organization is a fixture row for organizations with its phones and activity links.
type Organization struct {
	ID          int64    `yaml:"id"`
	Name        string   `yaml:"name"`
	BuildingID  int64    `yaml:"buildingId"`
	Phones      []string `yaml:"phones"`
	ActivityIDs []int64  `yaml:"activityIds"`
}

// Load reads a YAML fixture file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}

	return Parse(raw)
}

// Parse decodes a YAML fixture document.
func Parse(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "decode fixture")
	}

	return &f, nil
}

// Validate checks referential integrity, coordinates and the activity tree shape.
// All violations are joined.
func (f *Fixture) Validate() error {
	var errs []error

	buildings := make(map[int64]struct{}, len(f.Buildings))
	for _, building := range f.Buildings {
		if _, dup := buildings[building.ID]; dup {
			errs = append(errs, errors.Wrapf(ErrDuplicateID, "building %d", building.ID))
		}
		buildings[building.ID] = struct{}{}

		if err := (entity.Coordinate{Lat: building.Latitude, Lon: building.Longitude}).Validate(); err != nil {
			errs = append(errs, errors.Wrapf(ErrBadCoordinate, "building %d", building.ID))
		}
	}

	activities := make(map[int64]struct{}, len(f.Activities))
	for _, activity := range f.Activities {
		activities[activity.ID] = struct{}{}
		if activity.Name == "" {
			errs = append(errs, errors.Wrapf(ErrEmptyName, "activity %d", activity.ID))
		}
	}
	if err := hierarchy.Validate(f.activityEntities()); err != nil {
		errs = append(errs, err)
	}

	organizations := make(map[int64]struct{}, len(f.Organizations))
	for _, organization := range f.Organizations {
		if _, dup := organizations[organization.ID]; dup {
			errs = append(errs, errors.Wrapf(ErrDuplicateID, "organization %d", organization.ID))
		}
		organizations[organization.ID] = struct{}{}

		if organization.Name == "" {
			errs = append(errs, errors.Wrapf(ErrEmptyName, "organization %d", organization.ID))
		}
		if _, ok := buildings[organization.BuildingID]; !ok {
			errs = append(errs, errors.Wrapf(ErrUnknownBuilding, "organization %d -> building %d", organization.ID, organization.BuildingID))
		}
		for _, activityID := range organization.ActivityIDs {
			if _, ok := activities[activityID]; !ok {
				errs = append(errs, errors.Wrapf(ErrUnknownActivity, "organization %d -> activity %d", organization.ID, activityID))
			}
		}
	}

	return errors.Join(errs...)
}

// Entities converts the fixture into domain entities. Organizations carry their
// building and activities. Activities are ordered so parents precede children.
func (f *Fixture) Entities() ([]*entity.Building, []*entity.Activity, []*entity.Organization) {
	buildings := make([]*entity.Building, 0, len(f.Buildings))
	buildingsByID := make(map[int64]*entity.Building, len(f.Buildings))
	for _, row := range f.Buildings {
		building := &entity.Building{
			ID:        row.ID,
			Address:   row.Address,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		}
		buildings = append(buildings, building)
		buildingsByID[building.ID] = building
	}

	activities := topological(f.activityEntities())
	activitiesByID := make(map[int64]*entity.Activity, len(activities))
	for _, activity := range activities {
		activitiesByID[activity.ID] = activity
	}

	organizations := make([]*entity.Organization, 0, len(f.Organizations))
	for _, row := range f.Organizations {
		organization := &entity.Organization{
			ID:         row.ID,
			Name:       row.Name,
			BuildingID: row.BuildingID,
			Building:   buildingsByID[row.BuildingID],
			Phones:     slices.Clone(row.Phones),
		}
		for _, activityID := range row.ActivityIDs {
			if activity, ok := activitiesByID[activityID]; ok {
				organization.Activities = append(organization.Activities, activity)
			}
		}
		organizations = append(organizations, organization)
	}

	return buildings, activities, organizations
}

func (f *Fixture) activityEntities() []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(f.Activities))
	for _, row := range f.Activities {
		activities = append(activities, &entity.Activity{
			ID:       row.ID,
			Name:     row.Name,
			ParentID: row.ParentID,
		})
	}

	return activities
}

// topological orders activities breadth-first from the roots; rows not reachable
// from a root keep their original relative order at the end.
func topological(activities []*entity.Activity) []*entity.Activity {
	children := make(map[int64][]*entity.Activity)
	var queue []*entity.Activity
	for _, activity := range activities {
		if activity.IsRoot() {
			queue = append(queue, activity)
		} else {
			children[*activity.ParentID] = append(children[*activity.ParentID], activity)
		}
	}

	ordered := make([]*entity.Activity, 0, len(activities))
	placed := make(map[int64]struct{}, len(activities))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := placed[current.ID]; seen {
			continue
		}
		placed[current.ID] = struct{}{}
		ordered = append(ordered, current)
		queue = append(queue, children[current.ID]...)
	}

	for _, activity := range activities {
		if _, seen := placed[activity.ID]; !seen {
			ordered = append(ordered, activity)
		}
	}

	return ordered
}
