package model

// Day weekday name row (Senin, Selasa, ...) (table days)
type Day struct {
	ID  ID     `gorm:"column:id;primaryKey"      json:"id"`
	Day string `gorm:"type:varchar(20);not null" json:"day"`
}

// TableName table name
func (Day) TableName() string { return "days" }

// Key primary key
func (d Day) Key() ID { return d.ID }

// StudyTime numbered period on a weekday (table study_times)
type StudyTime struct {
	ID        ID      `gorm:"column:id;primaryKey" json:"id"`
	DayID     ID      `gorm:"column:day_id;index"  json:"day_id"`
	Number    FlexInt `gorm:"type:smallint"        json:"number"` // jam ke-
	StartTime string  `gorm:"type:varchar(8)"      json:"start_time"`
	EndTime   string  `gorm:"type:varchar(8)"      json:"end_time"`
}

// TableName table name
func (StudyTime) TableName() string { return "study_times" }

// Key primary key
func (t StudyTime) Key() ID { return t.ID }
