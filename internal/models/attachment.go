package models

import "database/sql"

// Attachment is an uploaded media file reference. It may exist
// unattached (uploaded before the tweet is created); attaching sets
// publication_id exactly once.
type Attachment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement;column:id"`
	PublicationID sql.NullInt64 `gorm:"index;column:publication_id"`
	Link          string        `gorm:"type:varchar(1024);not null;column:link"`

	Publication *Publication `gorm:"foreignKey:PublicationID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
