package models

// User represents a registered author
type User struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"type:varchar(64);not null;index;column:name" json:"name"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
