package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stgibson/blogly/errs"
	"github.com/stgibson/blogly/models"
)

func TestUserAddAndFindByID(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	imageURL := "https://example.com/alan.jpg"
	user := models.User{FirstName: "Alan", LastName: "Alda", ImageURL: &imageURL}
	require.NoError(t, repo.Add(&user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alan", found.FirstName)
	assert.Equal(t, "Alda", found.LastName)
	require.NotNil(t, found.ImageURL)
	assert.Equal(t, imageURL, *found.ImageURL)
	assert.Equal(t, "Alan Alda", found.FullName())
}

func TestUserAddWithoutImageStoresAbsent(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	user := models.User{FirstName: "Joel", LastName: "Burton"}
	require.NoError(t, repo.Add(&user))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.ImageURL)
}

func TestUserFindByIDMissing(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestUserFindAllOrdersByLastThenFirstName(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	for _, u := range []models.User{
		{FirstName: "Jane", LastName: "Smith"},
		{FirstName: "Alan", LastName: "Alda"},
		{FirstName: "Arlene", LastName: "Alda"},
	} {
		user := u
		require.NoError(t, repo.Add(&user))
	}

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alan Alda", users[0].FullName())
	assert.Equal(t, "Arlene Alda", users[1].FullName())
	assert.Equal(t, "Jane Smith", users[2].FullName())
}

func TestUserUpdateOverwritesAllFields(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	imageURL := "https://example.com/alan.jpg"
	user := models.User{FirstName: "Alan", LastName: "Alda", ImageURL: &imageURL}
	require.NoError(t, repo.Add(&user))

	// An edit with a blank image field stores an empty string, not NULL
	empty := ""
	updated := models.User{ID: user.ID, FirstName: "Alphonso", LastName: "D'Abruzzo", ImageURL: &empty}
	require.NoError(t, repo.Update(&updated))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alphonso", found.FirstName)
	assert.Equal(t, "D'Abruzzo", found.LastName)
	require.NotNil(t, found.ImageURL)
	assert.Equal(t, "", *found.ImageURL)
}

func TestUserUpdateMissing(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	err := repo.Update(&models.User{ID: 42, FirstName: "No", LastName: "One"})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestUserDeleteCascadesToPostsAndTags(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepo(db)
	postRepo := NewPostRepo(db)
	tagRepo := NewTagRepo(db)

	alan := models.User{FirstName: "Alan", LastName: "Alda"}
	require.NoError(t, userRepo.Add(&alan))
	jane := models.User{FirstName: "Jane", LastName: "Smith"}
	require.NoError(t, userRepo.Add(&jane))

	funny := models.Tag{Name: "funny"}
	require.NoError(t, tagRepo.Add(&funny))

	mash := models.Post{Title: "MASH", Content: "I very much so enjoyed starring in it", UserID: alan.ID}
	require.NoError(t, postRepo.Add(&mash, []uint{funny.ID}))
	quote := models.Post{Title: "Quote", Content: "Loneliness is everything it's cracked up to be", UserID: alan.ID}
	require.NoError(t, postRepo.Add(&quote, nil))
	dev := models.Post{Title: "Dev", Content: "I am an expert", UserID: jane.ID}
	require.NoError(t, postRepo.Add(&dev, []uint{funny.ID}))

	require.NoError(t, userRepo.Delete(alan.ID))

	_, err := userRepo.FindByID(alan.ID)
	assert.True(t, errs.IsNotFound(err))
	_, err = postRepo.FindByID(mash.ID)
	assert.True(t, errs.IsNotFound(err))
	_, err = postRepo.FindByID(quote.ID)
	assert.True(t, errs.IsNotFound(err))

	// Jane's post and the tag itself are untouched
	survivor, err := postRepo.FindByID(dev.ID)
	require.NoError(t, err)
	require.Len(t, survivor.Tags, 1)
	assert.Equal(t, "funny", survivor.Tags[0].Name)

	var joinRows int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&joinRows).Error)
	assert.EqualValues(t, 1, joinRows)
}

func TestUserDeleteMissing(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	err := repo.Delete(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
