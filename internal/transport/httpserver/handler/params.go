package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	menudomain "menu-app-go/internal/domain/menu"
	"menu-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func pathParam(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// requireUser writes 401 and reports false when the request carries no user.
func requireUser(w http.ResponseWriter, r *http.Request) (middleware.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return middleware.User{}, false
	}
	return user, true
}

// requirePathParam writes 400 and reports false when the URL param is blank.
func requirePathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := pathParam(r, name)
	if value == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", name+" is required")
		return "", false
	}
	return value, true
}

// requireIDParam is requirePathParam for row ids. A value that is not a UUID
// cannot name a row, so it is reported with the notFound error.
func requireIDParam(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	value, ok := requirePathParam(w, r, name)
	if !ok {
		return "", false
	}
	if !menudomain.IsValidID(value) {
		if m, found := lookupMenuError(notFound); found {
			writeError(w, m.status, m.code, m.target.Error())
		} else {
			writeError(w, http.StatusNotFound, "not_found", notFound.Error())
		}
		return "", false
	}
	return value, true
}
