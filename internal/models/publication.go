package models

// Publication represents a single tweet
type Publication struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Content  string `gorm:"type:text;not null;column:content"`
	AuthorID int64  `gorm:"not null;index;column:author_id"`

	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Publication
func (Publication) TableName() string {
	return "publications"
}
