package handler

import (
	"net/http"
)

type languageListResponse struct {
	Items []languageResponse `json:"items"`
}

func (h *Handlers) GetPublicMenu(w http.ResponseWriter, r *http.Request) {
	slug, ok := requirePathParam(w, r, "slug")
	if !ok {
		return
	}

	view, err := h.Menus.GetPublicMenuBySlug(r.Context(), slug)
	if err != nil {
		h.writeMenuError(w, "public.get_menu: get menu failed", err, "slug", slug)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, toMenuViewResponse(view))
}

func (h *Handlers) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.Menus.ListLanguages(r.Context())
	if err != nil {
		h.writeMenuError(w, "languages.list: list languages failed", err)
		return
	}

	items := make([]languageResponse, 0, len(languages))
	for _, language := range languages {
		items = append(items, languageResponse{
			ID:      language.ID,
			ISOCode: language.ISOCode,
			Name:    language.Name,
			FlagURL: language.FlagURL,
		})
	}

	writeJSON(w, http.StatusOK, languageListResponse{Items: items})
}
