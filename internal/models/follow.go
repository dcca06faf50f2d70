package models

// Follow is a directed edge meaning "follower_id follows author_id".
// The follower receives the author's publications in their feed.
type Follow struct {
	AuthorID   int64 `gorm:"primaryKey;column:author_id"`
	FollowerID int64 `gorm:"primaryKey;column:follower_id"`

	Author   *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Follower *User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "follows"
}
