package postgres

import (
	"context"

	"orgs/internal/domain/entity"
	"orgs/internal/domain/repository"
	"orgs/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const fixtureBatchSize = 500

// fixtureWriter implements the domain.FixtureWriter interface.
type fixtureWriter struct {
	db *gorm.DB
}

// NewFixtureWriter is the constructor for fixtureWriter.
func NewFixtureWriter(db *gorm.DB) repository.FixtureWriter {
	return &fixtureWriter{db: db}
}

// InsertBuildings persists buildings keeping their IDs.
func (w *fixtureWriter) InsertBuildings(ctx context.Context, buildings []*entity.Building) error {
	if len(buildings) == 0 {
		return nil
	}

	buildingModels := make([]*model.BuildingModel, 0, len(buildings))
	for _, building := range buildings {
		buildingModels = append(buildingModels, fromBuildingDomain(building))
	}

	if err := w.db.WithContext(ctx).CreateInBatches(buildingModels, fixtureBatchSize).Error; err != nil {
		return fixtureError(err, "buildings")
	}

	return nil
}

// InsertActivities persists activities in the given order so parents precede children.
func (w *fixtureWriter) InsertActivities(ctx context.Context, activities []*entity.Activity) error {
	for _, activity := range activities {
		if err := w.db.WithContext(ctx).Create(fromActivityDomain(activity)).Error; err != nil {
			return fixtureError(err, "activities")
		}
	}

	return nil
}

// InsertOrganizations persists organizations, their phones and activity links.
func (w *fixtureWriter) InsertOrganizations(ctx context.Context, organizations []*entity.Organization) error {
	if len(organizations) == 0 {
		return nil
	}

	organizationModels := make([]*model.OrganizationModel, 0, len(organizations))
	var links []*model.OrganizationActivityModel
	for _, organization := range organizations {
		organizationModels = append(organizationModels, fromOrganizationDomain(organization))
		for _, activity := range organization.Activities {
			links = append(links, &model.OrganizationActivityModel{
				OrganizationID: organization.ID,
				ActivityID:     activity.ID,
			})
		}
	}

	// Phones are saved through the has-many association.
	if err := w.db.WithContext(ctx).CreateInBatches(organizationModels, fixtureBatchSize).Error; err != nil {
		return fixtureError(err, "organizations")
	}

	if len(links) == 0 {
		return nil
	}

	if err := w.db.WithContext(ctx).CreateInBatches(links, fixtureBatchSize).Error; err != nil {
		return fixtureError(err, "organization_activities")
	}

	return nil
}
