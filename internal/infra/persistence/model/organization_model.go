package model

// OrganizationModel mirrors the 'organizations' table.
type OrganizationModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	Name       string `gorm:"type:varchar(255);not null;index:idx_organizations_on_name"`
	BuildingID int64  `gorm:"not null;index:idx_organizations_on_building"`

	Building   *BuildingModel           `gorm:"foreignKey:BuildingID"`
	Phones     []OrganizationPhoneModel `gorm:"foreignKey:OrganizationID"`
	Activities []*ActivityModel         `gorm:"many2many:organization_activities;joinForeignKey:OrganizationID;joinReferences:ActivityID"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// OrganizationPhoneModel mirrors the 'organization_phones' table.
type OrganizationPhoneModel struct {
	ID             int64  `gorm:"primaryKey"`
	OrganizationID int64  `gorm:"not null;index:idx_organization_phones_on_organization"`
	Phone          string `gorm:"type:varchar(64);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationPhoneModel) TableName() string {
	return "organization_phones"
}

// OrganizationActivityModel mirrors the 'organization_activities' join table.
type OrganizationActivityModel struct {
	OrganizationID int64 `gorm:"primaryKey"`
	ActivityID     int64 `gorm:"primaryKey;index:idx_organization_activities_on_activity"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationActivityModel) TableName() string {
	return "organization_activities"
}
