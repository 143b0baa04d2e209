package database

import (
	"github.com/stgibson/blogly/models"
	"gorm.io/gorm"
)

// Seed populates a fresh database with a few sample users, posts and tags so
// the pages have something to show during development. Existing rows are
// cleared first.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{&models.PostTag{}, &models.Post{}, &models.Tag{}, &models.User{}} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}

		imageURL := "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9e/Alan_Alda_circa_1960s.JPG/800px-Alan_Alda_circa_1960s.JPG"
		users := []*models.User{
			{FirstName: "Alan", LastName: "Alda", ImageURL: &imageURL},
			{FirstName: "Joel", LastName: "Burton"},
			{FirstName: "Jane", LastName: "Smith"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		posts := []*models.Post{
			{Title: "MASH", Content: "I very much so enjoyed starring in it", UserID: users[0].ID},
			{Title: "Quote", Content: "Loneliness is everything it's cracked up to be", UserID: users[0].ID},
			{Title: "Dev", Content: "I am an expert", UserID: users[1].ID},
		}
		if err := tx.Omit("Tags", "User").Create(&posts).Error; err != nil {
			return err
		}

		tags := []*models.Tag{
			{Name: "funny"},
			{Name: "inspiring"},
			{Name: "tech"},
		}
		if err := tx.Omit("Posts").Create(&tags).Error; err != nil {
			return err
		}

		postTags := []*models.PostTag{
			{PostID: posts[0].ID, TagID: tags[0].ID},
			{PostID: posts[1].ID, TagID: tags[1].ID},
			{PostID: posts[2].ID, TagID: tags[2].ID},
		}
		return tx.Create(&postTags).Error
	})
}
