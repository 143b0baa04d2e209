package database

import (
	"errors"

	"github.com/stgibson/blogly/errs"
	"github.com/stgibson/blogly/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users ordered by last name, then first name
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("last_name, first_name").Find(&users).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "users", err)
	}
	return users, nil
}

// FindByID returns a user by its ID along with their posts
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.created_at DESC")
	}).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return errs.NewDatabaseError("create", "user", err)
	}
	return nil
}

// Update overwrites the user's name and image URL. The image URL is stored
// exactly as given, so an empty string stays an empty string here even though
// Add treats an absent image as NULL.
func (r *UserRepo) Update(user *models.User) error {
	var existing models.User
	err := r.db.First(&existing, user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return errs.NewDatabaseError("find", "user", err)
	}

	err = r.db.Model(&models.User{ID: user.ID}).Updates(map[string]any{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"image_url":  user.ImageURL,
	}).Error
	if err != nil {
		return errs.NewDatabaseError("update", "user", err)
	}
	return nil
}

// Delete removes the user together with all of their posts and those posts'
// tag associations, in a single transaction.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.First(&user, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFoundError("user not found")
		}
		if err != nil {
			return errs.NewDatabaseError("find", "user", err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return errs.NewDatabaseError("find", "posts", err)
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return errs.NewDatabaseError("delete", "post tags", err)
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return errs.NewDatabaseError("delete", "posts", err)
			}
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "user", err)
		}
		return nil
	})
}
