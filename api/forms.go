package api

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stgibson/blogly/errs"
)

// validate checks form structs against their `validate` tags. Field names in
// reported errors use the `form` tag so they match the HTML inputs.
var validate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm converts the first validator failure into a ValidationError
// carrying the message the page should flash.
func validateForm(form any, message string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.NewValidationError(fieldErrs[0].Field(), message)
	}
	return errs.NewValidationError("", message)
}

type UserForm struct {
	FirstName string `form:"first-name" validate:"required"`
	LastName  string `form:"last-name" validate:"required"`
	ImageURL  string `form:"image-url"`
}

func parseUserForm(r *http.Request) (UserForm, error) {
	if err := r.ParseForm(); err != nil {
		return UserForm{}, errs.NewValidationError("", "The submitted form could not be read")
	}
	form := UserForm{
		FirstName: r.PostFormValue("first-name"),
		LastName:  r.PostFormValue("last-name"),
		ImageURL:  r.PostFormValue("image-url"),
	}
	return form, validateForm(form, "Please fill out both your first name and your last name")
}

type PostForm struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
	TagIDs  []uint `form:"tags"`
}

func parsePostForm(r *http.Request) (PostForm, error) {
	if err := r.ParseForm(); err != nil {
		return PostForm{}, errs.NewValidationError("", "The submitted form could not be read")
	}
	form := PostForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}
	// Tag checkboxes submit explicit tag ids, one repeated field per checked box
	for _, raw := range r.PostForm["tags"] {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return form, errs.NewValidationError("tags", "Invalid tag selection")
		}
		form.TagIDs = append(form.TagIDs, uint(id))
	}
	return form, validateForm(form, "Please fill out all fields")
}

type TagForm struct {
	Name string `form:"name" validate:"required"`
}

func parseTagForm(r *http.Request) (TagForm, error) {
	if err := r.ParseForm(); err != nil {
		return TagForm{}, errs.NewValidationError("", "The submitted form could not be read")
	}
	form := TagForm{Name: r.PostFormValue("name")}
	return form, validateForm(form, "Please fill out all fields")
}
