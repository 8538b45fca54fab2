// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"orgs/internal/domain/entity"
	"orgs/internal/errors"
)

// Domain-specific errors for organization persistence.
var (
	// ErrOrganizationNotFound is returned when an organization is not found.
	ErrOrganizationNotFound = errors.New("organization not found")
)

// OrganizationQuery is the storage-level form of a composed search.
// Every populated field narrows the result (AND semantics); a nil or empty slice
// and an empty string mean "no constraint".
type OrganizationQuery struct {
	NameContains string  // Case-insensitive substring of the organization name.
	BuildingIDs  []int64 // Organization must reside in one of these buildings.
	ActivityIDs  []int64 // Organization must carry at least one of these activities.
	Limit        int     // Maximum rows returned; 0 means unlimited.
	Offset       int     // Rows skipped before the first returned row.
}

// OrganizationRepository defines the interface for organization read operations.
// Returned organizations carry their building, phones and activities.
type OrganizationRepository interface {
	// FindOrganizationByID retrieves an organization by its ID.
	// Returns ErrOrganizationNotFound if it does not exist.
	FindOrganizationByID(ctx context.Context, id int64) (*entity.Organization, error)

	// SearchOrganizations returns organizations matching the query ordered by ID,
	// together with the total number of matches ignoring Limit and Offset.
	SearchOrganizations(ctx context.Context, query OrganizationQuery) ([]*entity.Organization, int64, error)
}
