package model

// ActivityModel mirrors the 'activities' table. ParentID forms the activity tree.
type ActivityModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"type:varchar(255);not null"`
	ParentID *int64 `gorm:"index:idx_activities_on_parent"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
