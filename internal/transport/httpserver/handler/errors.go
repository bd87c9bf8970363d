package handler

import (
	"errors"
	"net/http"

	menudomain "menu-app-go/internal/domain/menu"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var menuErrorMappings = []errorMapping{
	{menudomain.ErrMenuNotFound, http.StatusNotFound, "menu_not_found"},
	{menudomain.ErrCategoryNotFound, http.StatusNotFound, "category_not_found"},
	{menudomain.ErrDishNotFound, http.StatusNotFound, "dish_not_found"},
	{menudomain.ErrVariantNotFound, http.StatusNotFound, "variant_not_found"},
	{menudomain.ErrLanguageNotFound, http.StatusNotFound, "language_not_found"},
	{menudomain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{menudomain.ErrSubscriptionRequired, http.StatusPaymentRequired, "subscription_required"},
	{menudomain.ErrSlugTaken, http.StatusConflict, "slug_taken"},
	{menudomain.ErrInvalidSlug, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrNameRequired, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrCityRequired, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrMenuIDRequired, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrDishIDRequired, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrInvalidPrice, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrInvalidTag, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrDuplicateTag, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrInvalidTranslation, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrDuplicateTranslation, http.StatusBadRequest, "invalid_request"},
	{menudomain.ErrInvalidImageKind, http.StatusBadRequest, "invalid_request"},
}

// writeMenuError maps domain errors to the HTTP error envelope. Anything not
// listed is an internal failure.
func (h *Handlers) writeMenuError(w http.ResponseWriter, op string, err error, args ...any) {
	if m, ok := lookupMenuError(err); ok {
		h.log.BusinessError(op, err, args...)
		writeError(w, m.status, m.code, m.target.Error())
		return
	}

	h.log.InternalError(op, err, args...)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func lookupMenuError(err error) (errorMapping, bool) {
	for _, m := range menuErrorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}
