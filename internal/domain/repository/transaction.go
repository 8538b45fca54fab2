package repository

import (
	"context"

	"orgs/internal/domain/entity"
)

// FixtureWriter loads reference data. It is used only by the seeding tool; the
// API never writes.
type FixtureWriter interface {
	// InsertBuildings persists buildings keeping their IDs.
	InsertBuildings(ctx context.Context, buildings []*entity.Building) error

	// InsertActivities persists activities keeping their IDs; parents must precede children.
	InsertActivities(ctx context.Context, activities []*entity.Activity) error

	// InsertOrganizations persists organizations with their phones and activity links.
	InsertOrganizations(ctx context.Context, organizations []*entity.Organization) error
}

// TransactionManager defines the interface for managing database transactions.
// This allows callers to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewFixtureWriter returns a FixtureWriter bound to the current transaction.
	NewFixtureWriter() FixtureWriter
}
