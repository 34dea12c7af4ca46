package model

// Schedule one teaching slot (table schedules)
type Schedule struct {
	ID              ID `gorm:"column:id;primaryKey"             json:"id"`
	TeacherID       ID `gorm:"column:teacher_id;index"          json:"teacher_id"`
	StudyGroupID    ID `gorm:"column:study_group_id;index"      json:"study_group_id"`
	StudyTimeID     ID `gorm:"column:study_time_id"             json:"study_time_id"`
	StudyLocationID ID `gorm:"column:study_location_id"         json:"study_location_id"`
}

// TableName table name
func (Schedule) TableName() string { return "schedules" }

// Key primary key
func (s Schedule) Key() ID { return s.ID }

// Entity any fixture row addressable by its primary key
type Entity interface {
	Key() ID
}
