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

// activityRepository implements the domain.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// FindActivityByID retrieves an activity by its ID.
func (repo *activityRepository) FindActivityByID(ctx context.Context, id int64) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activity by ID")
	}

	return toActivityDomain(&activityM), nil
}

// ListActivities reads the adjacency rows of the whole activity tree.
func (repo *activityRepository) ListActivities(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&activityModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}
