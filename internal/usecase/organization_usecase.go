package usecase

import (
	"context"

	"orgs/internal/domain/entity"
)

// SearchInput is a composed organization search. Populated fields are combined
// with AND; a zero-value input matches every organization.
type SearchInput struct {
	Name       string           // Case-insensitive substring; blank means absent.
	BuildingID *int64           // Restrict to one building.
	ActivityID *int64           // Restrict to the activity closure.
	Geo        entity.GeoFilter // Restrict to buildings inside the filter.
	Limit      int              // Page size; 0 selects the configured default.
	Offset     int              // Rows to skip.
}

// OrganizationPage is one page of a composed search ordered by organization ID.
type OrganizationPage struct {
	Organizations []*entity.Organization
	Total         int64
	Limit         int
	Offset        int
}

// GeoSearchResult lists the buildings matched by a geo filter and the organizations inside them.
type GeoSearchResult struct {
	Organizations []*entity.Organization
	Buildings     []*entity.Building
}

// OrganizationUsecase defines the read operations exposed by the API.
type OrganizationUsecase interface {
	// Search runs a composed search.
	Search(ctx context.Context, input *SearchInput) (*OrganizationPage, error)

	// SearchByName returns organizations whose name contains name, ignoring case.
	SearchByName(ctx context.Context, name string) ([]*entity.Organization, error)

	// GetOrganization returns one organization with its building, phones and activities.
	GetOrganization(ctx context.Context, id int64) (*entity.Organization, error)

	// GetBuilding returns one building.
	GetBuilding(ctx context.Context, id int64) (*entity.Building, error)

	// ListByBuilding returns the organizations located in the building.
	ListByBuilding(ctx context.Context, buildingID int64) ([]*entity.Organization, error)

	// ListByActivity returns organizations tagged with the activity or one of its descendants.
	ListByActivity(ctx context.Context, activityID int64) ([]*entity.Organization, error)

	// GeoRadius returns buildings within meters of center and their organizations.
	GeoRadius(ctx context.Context, center entity.Coordinate, meters float64) (*GeoSearchResult, error)

	// GeoRectangle returns buildings inside rect and their organizations.
	GeoRectangle(ctx context.Context, rect entity.RectangleFilter) (*GeoSearchResult, error)
}
