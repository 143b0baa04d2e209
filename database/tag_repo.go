package database

import (
	"errors"

	"github.com/stgibson/blogly/errs"
	"github.com/stgibson/blogly/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by id
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.Order("id").Find(&tags).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	return tags, nil
}

// FindByID returns a tag together with the posts it is attached to
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.created_at DESC")
	}).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("tag not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// FindByName returns the tag with the given name, or nil when no such tag
// exists.
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// Add inserts a new tag. Tag names are unique across the system; a duplicate
// name is a conflict. The unique index backstops the up-front check.
func (r *TagRepo) Add(tag *models.Tag) error {
	existing, err := r.FindByName(tag.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("a tag with that name already exists")
	}

	err = r.db.Omit("Posts").Create(tag).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictError("a tag with that name already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("create", "tag", err)
	}
	return nil
}

// Update renames the tag. Renaming to another tag's name is a conflict;
// renaming a tag to its own current name is allowed.
func (r *TagRepo) Update(tag *models.Tag) error {
	var existing models.Tag
	err := r.db.First(&existing, tag.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError("tag not found")
	}
	if err != nil {
		return errs.NewDatabaseError("find", "tag", err)
	}

	collision, err := r.FindByName(tag.Name)
	if err != nil {
		return err
	}
	if collision != nil && collision.ID != tag.ID {
		return errs.NewConflictError("a tag with that name already exists")
	}

	err = r.db.Model(&models.Tag{ID: tag.ID}).Update("name", tag.Name).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictError("a tag with that name already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("update", "tag", err)
	}
	return nil
}

// Delete removes the tag and its post associations in one transaction.
// Posts tagged with it are untouched.
func (r *TagRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		err := tx.First(&tag, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFoundError("tag not found")
		}
		if err != nil {
			return errs.NewDatabaseError("find", "tag", err)
		}

		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete", "post tags", err)
		}
		if err := tx.Delete(&models.Tag{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "tag", err)
		}
		return nil
	})
}
