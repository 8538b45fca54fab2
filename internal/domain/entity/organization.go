// Package entity contains the core business objects of the project.
package entity

// Organization is a company or institution located in exactly one building.
type Organization struct {
	ID         int64       // Primary key.
	Name       string      // Display name, searched by substring.
	BuildingID int64       // The building the organization resides in.
	Building   *Building   // Denormalized building, filled by repositories.
	Phones     []string    // Contact phone numbers.
	Activities []*Activity // Activities the organization is tagged with.
}

// ActivityNames returns the names of the organization's activities in stored order.
func (o *Organization) ActivityNames() []string {
	names := make([]string, 0, len(o.Activities))
	for _, activity := range o.Activities {
		names = append(names, activity.Name)
	}

	return names
}
