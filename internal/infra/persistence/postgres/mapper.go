package postgres

import (
	"orgs/internal/domain/entity"
	"orgs/internal/infra/persistence/model"
)

func toBuildingDomain(buildingM *model.BuildingModel) *entity.Building {
	if buildingM == nil {
		return nil
	}

	return &entity.Building{
		ID:        buildingM.ID,
		Address:   buildingM.Address,
		Latitude:  buildingM.Latitude,
		Longitude: buildingM.Longitude,
	}
}

func fromBuildingDomain(building *entity.Building) *model.BuildingModel {
	return &model.BuildingModel{
		ID:        building.ID,
		Address:   building.Address,
		Latitude:  building.Latitude,
		Longitude: building.Longitude,
	}
}

func toActivityDomain(activityM *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:       activityM.ID,
		Name:     activityM.Name,
		ParentID: activityM.ParentID,
	}
}

func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:       activity.ID,
		Name:     activity.Name,
		ParentID: activity.ParentID,
	}
}

func toOrganizationDomain(organizationM *model.OrganizationModel) *entity.Organization {
	phones := make([]string, 0, len(organizationM.Phones))
	for _, phoneM := range organizationM.Phones {
		phones = append(phones, phoneM.Phone)
	}

	activities := make([]*entity.Activity, 0, len(organizationM.Activities))
	for _, activityM := range organizationM.Activities {
		activities = append(activities, toActivityDomain(activityM))
	}

	return &entity.Organization{
		ID:         organizationM.ID,
		Name:       organizationM.Name,
		BuildingID: organizationM.BuildingID,
		Building:   toBuildingDomain(organizationM.Building),
		Phones:     phones,
		Activities: activities,
	}
}

// fromOrganizationDomain maps the organization row and its phones; activity
// links are written separately.
func fromOrganizationDomain(organization *entity.Organization) *model.OrganizationModel {
	phones := make([]model.OrganizationPhoneModel, 0, len(organization.Phones))
	for _, phone := range organization.Phones {
		phones = append(phones, model.OrganizationPhoneModel{
			OrganizationID: organization.ID,
			Phone:          phone,
		})
	}

	return &model.OrganizationModel{
		ID:         organization.ID,
		Name:       organization.Name,
		BuildingID: organization.BuildingID,
		Phones:     phones,
	}
}
