package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stgibson/blogly/errs"
	"github.com/stgibson/blogly/models"
)

func TestTagAddAndFindAll(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	for _, name := range []string{"funny", "tech", "inspiring"} {
		tag := models.Tag{Name: name}
		require.NoError(t, repo.Add(&tag))
		require.NotZero(t, tag.ID)
	}

	tags, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "funny", tags[0].Name)
	assert.Equal(t, "tech", tags[1].Name)
	assert.Equal(t, "inspiring", tags[2].Name)
}

func TestTagAddDuplicateNameConflicts(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	funny := models.Tag{Name: "funny"}
	require.NoError(t, repo.Add(&funny))

	dup := models.Tag{Name: "funny"}
	err := repo.Add(&dup)
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	// The original tag is unchanged
	found, err := repo.FindByID(funny.ID)
	require.NoError(t, err)
	assert.Equal(t, "funny", found.Name)

	tags, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagFindByIDLoadsPosts(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepo(db)
	postRepo := NewPostRepo(db)
	tagRepo := NewTagRepo(db)

	user := addTestUser(t, userRepo)
	funny := addTestTag(t, tagRepo, "funny")

	post := models.Post{Title: "MASH", Content: "content", UserID: user.ID}
	require.NoError(t, postRepo.Add(&post, []uint{funny.ID}))

	found, err := tagRepo.FindByID(funny.ID)
	require.NoError(t, err)
	require.Len(t, found.Posts, 1)
	assert.Equal(t, "MASH", found.Posts[0].Title)
}

func TestTagFindByIDMissing(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestTagUpdateRenames(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	tag := models.Tag{Name: "funy"}
	require.NoError(t, repo.Add(&tag))

	require.NoError(t, repo.Update(&models.Tag{ID: tag.ID, Name: "funny"}))

	found, err := repo.FindByID(tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "funny", found.Name)

	// Renaming a tag to its own current name is fine
	require.NoError(t, repo.Update(&models.Tag{ID: tag.ID, Name: "funny"}))
}

func TestTagUpdateNameCollisionConflicts(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	funny := models.Tag{Name: "funny"}
	require.NoError(t, repo.Add(&funny))
	tech := models.Tag{Name: "tech"}
	require.NoError(t, repo.Add(&tech))

	err := repo.Update(&models.Tag{ID: tech.ID, Name: "funny"})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestTagUpdateMissing(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	err := repo.Update(&models.Tag{ID: 42, Name: "ghost"})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestTagDeleteRemovesAssociationsButNotPosts(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepo(db)
	postRepo := NewPostRepo(db)
	tagRepo := NewTagRepo(db)

	user := addTestUser(t, userRepo)
	funny := addTestTag(t, tagRepo, "funny")

	post := models.Post{Title: "MASH", Content: "content", UserID: user.ID}
	require.NoError(t, postRepo.Add(&post, []uint{funny.ID}))

	require.NoError(t, tagRepo.Delete(funny.ID))

	_, err := tagRepo.FindByID(funny.ID)
	assert.True(t, errs.IsNotFound(err))

	found, err := postRepo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Tags)

	var joinRows int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&joinRows).Error)
	assert.Zero(t, joinRows)
}

func TestTagDeleteMissing(t *testing.T) {
	repo := NewTagRepo(newTestDB(t))

	err := repo.Delete(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
