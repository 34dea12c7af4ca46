package model

// Program study program (jurusan) (table programs)
type Program struct {
	ID       ID     `gorm:"column:id;primaryKey"       json:"id"`
	Codename string `gorm:"type:varchar(20);not null"  json:"codename"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName table name
func (Program) TableName() string { return "programs" }

// Key primary key
func (p Program) Key() ID { return p.ID }

// Level education level (X, XI, XII) (table levels)
type Level struct {
	ID   ID     `gorm:"column:id;primaryKey"      json:"id"`
	Name string `gorm:"type:varchar(20);not null" json:"name"`
}

// TableName table name
func (Level) TableName() string { return "levels" }

// Key primary key
func (l Level) Key() ID { return l.ID }

// StudyGroup class cohort (table study_groups)
type StudyGroup struct {
	ID        ID         `gorm:"column:id;primaryKey"  json:"id"`
	LevelID   ID         `gorm:"column:level_id"       json:"level_id"`
	ProgramID ID         `gorm:"column:program_id"     json:"program_id"`
	Number    FlexString `gorm:"type:varchar(10)"      json:"number"` // optional section
	ChiefID   ID         `gorm:"column:chief_id"       json:"chief_id"`
}

// TableName table name
func (StudyGroup) TableName() string { return "study_groups" }

// Key primary key
func (g StudyGroup) Key() ID { return g.ID }
