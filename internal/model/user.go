package model

// User login account (table users)
// Passwords are plaintext in the fixtures and never leave the repository layer.
type User struct {
	ID       ID     `gorm:"column:id;primaryKey"         json:"id"`
	Name     string `gorm:"type:varchar(100);not null"   json:"name"`
	Username string `gorm:"type:varchar(50);index"       json:"username"`
	Password string `gorm:"type:varchar(100);not null"   json:"password"`
	Email    string `gorm:"type:varchar(100)"            json:"email"`
}

// TableName table name
func (User) TableName() string { return "users" }

// Key primary key
func (u User) Key() ID { return u.ID }

// Teacher teacher profile of a user (table teachers)
type Teacher struct {
	ID     ID `gorm:"column:id;primaryKey" json:"id"`
	UserID ID `gorm:"column:user_id;index" json:"user_id"`
}

// TableName table name
func (Teacher) TableName() string { return "teachers" }

// Key primary key
func (t Teacher) Key() ID { return t.ID }
