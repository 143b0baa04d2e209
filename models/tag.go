package models

// Tag represents a label that can be attached to any number of posts
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tag_name"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags"`
}
