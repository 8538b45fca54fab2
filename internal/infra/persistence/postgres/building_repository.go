package postgres

import (
	"context"

	"orgs/internal/domain/entity"
	domainerrors "orgs/internal/domain/errors"
	"orgs/internal/domain/repository"
	"orgs/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buildingRepository implements the domain.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

// FindBuildingByID retrieves a building by its ID.
func (repo *buildingRepository) FindBuildingByID(ctx context.Context, id int64) (*entity.Building, error) {
	var buildingM model.BuildingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find building by ID")
	}

	return toBuildingDomain(&buildingM), nil
}

// FindBuildingsInBound uses the (latitude, longitude) index as a coarse box filter.
func (repo *buildingRepository) FindBuildingsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order("id ASC").
		Find(&buildingModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find buildings in bound")
	}

	buildings := make([]*entity.Building, 0, len(buildingModels))
	for _, buildingM := range buildingModels {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}
