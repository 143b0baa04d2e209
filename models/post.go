package models

import "time"

// Post represents a blog post written by a user
type Post struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime;not null"`
	UserID    uint      `json:"userId" db:"user_id" gorm:"not null;index:idx_post_user_id"`

	User User  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:post_tags"`
}

// FriendlyDate renders the creation time in a casual form,
// e.g. "Wed Jan 5 2022, 3:04 PM".
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}
