package database

import (
	"errors"

	"github.com/stgibson/blogly/errs"
	"github.com/stgibson/blogly/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// preloadTags loads a post's tags in name order so listings are stable.
func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name")
}

// FindByID returns a post with its author and tags
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Tags", preloadTags).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("post not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	return &post, nil
}

// FindByUser returns a user's posts, newest first.
func (r *PostRepo) FindByUser(userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags", preloadTags).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	return posts, nil
}

// FindRecent returns posts ordered newest first. A non-positive limit returns
// all posts.
func (r *PostRepo) FindRecent(limit int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.db.Preload("User").Preload("Tags", preloadTags).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	return posts, nil
}

// Add inserts a new post and its tag associations in one transaction.
// Duplicate ids in tagIDs collapse to a single join row.
func (r *PostRepo) Add(post *models.Post, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTagsExist(tx, uniqueIDs(tagIDs)); err != nil {
			return err
		}
		if err := tx.Omit("Tags", "User").Create(post).Error; err != nil {
			return errs.NewDatabaseError("create", "post", err)
		}
		for _, tagID := range uniqueIDs(tagIDs) {
			pt := models.PostTag{PostID: post.ID, TagID: tagID}
			if err := tx.Create(&pt).Error; err != nil {
				return errs.NewDatabaseError("create", "post tag", err)
			}
		}
		return nil
	})
}

// Update overwrites the post's title and content and reconciles its tag
// associations against tagIDs, all in one transaction. The creation time and
// the owning user never change.
func (r *PostRepo) Update(post *models.Post, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Post
		err := tx.First(&existing, post.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFoundError("post not found")
		}
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}

		err = tx.Model(&models.Post{ID: post.ID}).Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
		}).Error
		if err != nil {
			return errs.NewDatabaseError("update", "post", err)
		}

		return reconcileTags(tx, post.ID, tagIDs)
	})
}

// reconcileTags diffs the post's join rows against the desired tag set:
// missing pairs are created, pairs no longer selected are deleted. Applying
// the same set twice is a no-op.
func reconcileTags(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if err := ensureTagsExist(tx, uniqueIDs(tagIDs)); err != nil {
		return err
	}

	var current []models.PostTag
	if err := tx.Where("post_id = ?", postID).Find(&current).Error; err != nil {
		return errs.NewDatabaseError("find", "post tags", err)
	}

	desired := make(map[uint]bool, len(tagIDs))
	for _, tagID := range tagIDs {
		desired[tagID] = true
	}
	existing := make(map[uint]bool, len(current))
	for _, pt := range current {
		existing[pt.TagID] = true
	}

	for _, tagID := range uniqueIDs(tagIDs) {
		if existing[tagID] {
			continue
		}
		pt := models.PostTag{PostID: postID, TagID: tagID}
		if err := tx.Create(&pt).Error; err != nil {
			return errs.NewDatabaseError("create", "post tag", err)
		}
	}
	for _, pt := range current {
		if desired[pt.TagID] {
			continue
		}
		err := tx.Where("post_id = ? AND tag_id = ?", postID, pt.TagID).Delete(&models.PostTag{}).Error
		if err != nil {
			return errs.NewDatabaseError("delete", "post tag", err)
		}
	}
	return nil
}

// Delete removes the post and its tag associations in one transaction and
// returns the owning user's id so callers can redirect to that user's page.
func (r *PostRepo) Delete(id uint) (uint, error) {
	var userID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.First(&post, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFoundError("post not found")
		}
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		userID = post.UserID

		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete", "post tags", err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "post", err)
		}
		return nil
	})
	return userID, err
}

// ensureTagsExist fails when any id in ids references no stored tag, so an
// association can only ever point at a real tag. ids must already be
// deduplicated.
func ensureTagsExist(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Tag{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return errs.NewDatabaseError("find", "tags", err)
	}
	if count != int64(len(ids)) {
		return errs.NewValidationError("tags", "Invalid tag selection")
	}
	return nil
}

// uniqueIDs drops duplicate ids while keeping the first occurrence order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
