package models

// Like links a user to a publication they liked.
// At most one row exists per (publication, author) pair.
type Like struct {
	PublicationID int64 `gorm:"primaryKey;column:publication_id"`
	AuthorID      int64 `gorm:"primaryKey;column:author_id"`
	IsLiked       bool  `gorm:"not null;default:true;column:is_liked"`

	Publication *Publication `gorm:"foreignKey:PublicationID;references:ID;constraint:OnDelete:CASCADE"`
	Author      *User        `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}
