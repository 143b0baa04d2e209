package models

import "fmt"

// User represents an author of blog posts
type User struct {
	ID        uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	FirstName string  `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName  string  `json:"lastName" db:"last_name" gorm:"type:text;not null"`
	ImageURL  *string `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Posts     []Post  `json:"posts,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// FullName concatenates the user's first and last name. If the display format
// for names ever changes, only this method needs updating.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
