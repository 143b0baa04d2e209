package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "blogly_flash"

const (
	severitySuccess = "success"
	severityDanger  = "danger"
)

// Flash is a one-shot message shown to the user on the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// setFlash stores the message in a short-lived cookie so it survives the
// redirect that follows every mutating request.
func setFlash(w http.ResponseWriter, message, severity string) {
	payload, err := json.Marshal(Flash{Message: message, Severity: severity})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash Flash
	if err := json.Unmarshal(payload, &flash); err != nil {
		return nil
	}
	return &flash
}
