package postgres

import (
	"context"

	"orgs/internal/domain/entity"
	domainerrors "orgs/internal/domain/errors"
	"orgs/internal/domain/repository"
	"orgs/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// organizationRepository implements the domain.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindOrganizationByID retrieves an organization with its building, phones and activities.
func (repo *organizationRepository) FindOrganizationByID(ctx context.Context, id int64) (*entity.Organization, error) {
	var organizationM model.OrganizationModel
	err := repo.withAssociations(repo.db.WithContext(ctx)).
		Where("organizations.id = ?", id).
		Take(&organizationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find organization by ID")
	}

	return toOrganizationDomain(&organizationM), nil
}

// SearchOrganizations returns one page of matching organizations and the total match count.
func (repo *organizationRepository) SearchOrganizations(ctx context.Context, query repository.OrganizationQuery) ([]*entity.Organization, int64, error) {
	var total int64
	if err := repo.filter(repo.db.WithContext(ctx), query).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count organizations")
	}
	if total == 0 {
		return []*entity.Organization{}, 0, nil
	}

	page := repo.filter(repo.db.WithContext(ctx), query).Order("organizations.id ASC")
	if query.Limit > 0 {
		page = page.Limit(query.Limit)
	}
	if query.Offset > 0 {
		page = page.Offset(query.Offset)
	}

	var organizationModels []*model.OrganizationModel
	if err := repo.withAssociations(page).Find(&organizationModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search organizations")
	}

	organizations := make([]*entity.Organization, 0, len(organizationModels))
	for _, organizationM := range organizationModels {
		organizations = append(organizations, toOrganizationDomain(organizationM))
	}

	return organizations, total, nil
}

// filter applies the AND of the populated query fields.
func (repo *organizationRepository) filter(db *gorm.DB, query repository.OrganizationQuery) *gorm.DB {
	db = db.Model(&model.OrganizationModel{})

	if query.NameContains != "" {
		db = db.Where("organizations.name ILIKE ?", "%"+escapeLike(query.NameContains)+"%")
	}
	if len(query.BuildingIDs) > 0 {
		db = db.Where("organizations.building_id IN ?", query.BuildingIDs)
	}
	if len(query.ActivityIDs) > 0 {
		// A subquery keeps one row per organization when several activities match.
		linked := db.Session(&gorm.Session{NewDB: true}).
			Model(&model.OrganizationActivityModel{}).
			Select("organization_id").
			Where("activity_id IN ?", query.ActivityIDs)
		db = db.Where("organizations.id IN (?)", linked)
	}

	return db
}

func (repo *organizationRepository) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Building").
		Preload("Phones", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("organization_phones.id ASC")
		}).
		Preload("Activities", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("activities.id ASC")
		})
}
