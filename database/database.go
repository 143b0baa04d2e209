package database

import (
	"github.com/stgibson/blogly/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo *UserRepo
	postRepo *PostRepo
	tagRepo  *TagRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo: NewUserRepo(db),
		postRepo: NewPostRepo(db),
		tagRepo:  NewTagRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

// Migrate creates or updates the users, posts, tags and post_tags relations.
// The explicit join model is registered first so that gorm's many2many
// association and direct PostTag writes share the same table.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Post{}, "Tags", &models.PostTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Posts", &models.PostTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Tag{},
	)
}
