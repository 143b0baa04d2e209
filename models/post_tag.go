package models

// PostTag is the join row associating one post with one tag. The composite
// primary key keeps each pair unique.
type PostTag struct {
	PostID uint `json:"postId" db:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tagId" db:"tag_id" gorm:"primaryKey;index:idx_post_tag_tag_id"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
