package model

// StudyLocation classroom or lab (table study_locations)
type StudyLocation struct {
	ID   ID     `gorm:"column:id;primaryKey"       json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName table name
func (StudyLocation) TableName() string { return "study_locations" }

// Key primary key
func (l StudyLocation) Key() ID { return l.ID }
