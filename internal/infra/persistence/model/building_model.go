package model

// BuildingModel is the GORM-specific struct for the 'buildings' table.
type BuildingModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false"`
	Address   string  `gorm:"type:text;not null"`
	Latitude  float64 `gorm:"type:double precision;not null;index:idx_buildings_on_coordinates"`
	Longitude float64 `gorm:"type:double precision;not null;index:idx_buildings_on_coordinates"`
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}
