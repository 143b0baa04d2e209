package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stgibson/blogly/database"
	"github.com/stgibson/blogly/models"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	renderer  Renderer
	userRepo  *database.UserRepo
}

func newUserHandler(renderer Renderer, userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(renderer, logger),
		logger:    logger,
		renderer:  renderer,
		userRepo:  userRepo,
	}
}

// listUsers shows all users ordered by last then first name, each linked to
// their profile page.
func (h userHandler) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		h.renderer.Render(w, r, "users.html", &PageData{Title: "Users", Users: users})
	}
}

// showAddUserForm shows the form for creating a new user
func (h userHandler) showAddUserForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, "add-user.html", &PageData{Title: "Add User"})
	}
}

// createUser adds a new user from the submitted form and redirects back to
// the user list. An empty image URL is stored as absent so the pages can fall
// back to the placeholder image.
func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseUserForm(r)
		if err != nil {
			h.responder.Error(w, r, err, "/users/new")
			return
		}

		user := models.User{
			FirstName: form.FirstName,
			LastName:  form.LastName,
		}
		if form.ImageURL != "" {
			user.ImageURL = &form.ImageURL
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.Error(w, r, err, "/users/new")
			return
		}

		h.responder.Redirect(w, r, "/users", "User has been successfully created")
	}
}

// showUser shows the detail page for one user with their posts
func (h userHandler) showUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		h.renderer.Render(w, r, "user-details.html", &PageData{Title: user.FullName(), User: user})
	}
}

// showEditUserForm shows the form for editing an existing user
func (h userHandler) showEditUserForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		h.renderer.Render(w, r, "edit-user.html", &PageData{Title: "Edit User", User: user})
	}
}

// updateUser overwrites the user's name and image URL from the form. Unlike
// createUser, a blank image field is stored as an empty string here.
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}
		backURL := fmt.Sprintf("/users/%d/edit", userID)

		form, err := parseUserForm(r)
		if err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		user := models.User{
			ID:        userID,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			ImageURL:  &form.ImageURL,
		}

		if err := h.userRepo.Update(&user); err != nil {
			h.responder.Error(w, r, err, backURL)
			return
		}

		h.responder.Redirect(w, r, "/users", "User has been successfully updated")
	}
}

// deleteUser removes the user along with their posts, then returns to the
// user list.
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.Error(w, r, err, "/users")
			return
		}

		h.responder.Redirect(w, r, "/users", "")
	}
}
