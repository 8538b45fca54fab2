package handler

import (
	"orgs/internal/domain/entity"
	"orgs/internal/usecase"
)

// BuildingResponse is the wire form of a building.
type BuildingResponse struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityResponse is the wire form of an activity.
type ActivityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// OrganizationResponse is the wire form of an organization.
type OrganizationResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	BuildingID int64              `json:"building_id"`
	Building   *BuildingResponse  `json:"building,omitempty"`
	Phones     []string           `json:"phones"`
	Activities []ActivityResponse `json:"activities"`
}

// OrganizationPageResponse is one page of a composed search.
type OrganizationPageResponse struct {
	Items  []OrganizationResponse `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// GeoSearchResponse lists matched buildings and the organizations inside them.
type GeoSearchResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Buildings     []BuildingResponse     `json:"buildings"`
}

func toBuildingResponse(b *entity.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func toOrganizationResponse(o *entity.Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:         o.ID,
		Name:       o.Name,
		BuildingID: o.BuildingID,
		Phones:     make([]string, 0, len(o.Phones)),
		Activities: make([]ActivityResponse, 0, len(o.Activities)),
	}
	resp.Phones = append(resp.Phones, o.Phones...)
	if o.Building != nil {
		b := toBuildingResponse(o.Building)
		resp.Building = &b
	}
	for _, a := range o.Activities {
		resp.Activities = append(resp.Activities, ActivityResponse{ID: a.ID, Name: a.Name, ParentID: a.ParentID})
	}

	return resp
}

func toOrganizationResponses(orgs []*entity.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, toOrganizationResponse(o))
	}

	return out
}

func toPageResponse(page *usecase.OrganizationPage) OrganizationPageResponse {
	return OrganizationPageResponse{
		Items:  toOrganizationResponses(page.Organizations),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

func toGeoSearchResponse(res *usecase.GeoSearchResult) GeoSearchResponse {
	buildings := make([]BuildingResponse, 0, len(res.Buildings))
	for _, b := range res.Buildings {
		buildings = append(buildings, toBuildingResponse(b))
	}

	return GeoSearchResponse{
		Organizations: toOrganizationResponses(res.Organizations),
		Buildings:     buildings,
	}
}
