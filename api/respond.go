package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/stgibson/blogly/errs"
)

// Responder maps the outcome of a domain operation onto the form-driven UI:
// success redirects to a canonical page, recoverable failures flash and
// return to the originating form, missing entities get the 404 page.
type Responder struct {
	renderer Renderer
	logger   zerolog.Logger
}

func NewResponder(renderer Renderer, logger zerolog.Logger) Responder {
	return Responder{renderer: renderer, logger: logger}
}

// Redirect finishes a successful mutation with a flash message and a
// 303 See Other to the canonical page. An empty message skips the flash.
func (r Responder) Redirect(w http.ResponseWriter, req *http.Request, url, message string) {
	if message != "" {
		setFlash(w, message, severitySuccess)
	}
	http.Redirect(w, req, url, http.StatusSeeOther)
}

// Error routes a failed operation. backURL is the form page the user came
// from; validation and conflict errors send them back there with the message.
func (r Responder) Error(w http.ResponseWriter, req *http.Request, err error, backURL string) {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		switch {
		case errs.IsValidation(err), errs.IsConflict(err):
			setFlash(w, apiErr.Message(), severityDanger)
			http.Redirect(w, req, backURL, http.StatusSeeOther)
			return
		case errs.IsNotFound(err):
			r.renderer.NotFound(w, req)
			return
		}
		if apiErr.Cause != nil {
			r.logger.Error().
				Err(apiErr.Cause).
				Str("requestID", ctxRequestID(req.Context())).
				Msg(apiErr.Message())
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	// For unexpected errors, log and return a generic internal error
	r.logger.Error().
		Err(err).
		Str("requestID", ctxRequestID(req.Context())).
		Msg("unexpected error")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
