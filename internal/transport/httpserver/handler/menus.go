package handler

import (
	"net/http"
	"strings"

	menudomain "menu-app-go/internal/domain/menu"
)

type upsertMenuRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ContactNumber string `json:"contact_number"`
}

type menuImageRequest struct {
	URL *string `json:"url"`
}

type socialLinksRequest struct {
	Facebook     *string `json:"facebook"`
	Instagram    *string `json:"instagram"`
	TikTok       *string `json:"tiktok"`
	Website      *string `json:"website"`
	GoogleReview *string `json:"google_review"`
}

type menuLanguagesRequest struct {
	LanguageIDs []string `json:"language_ids"`
}

type menuLanguagesResponse struct {
	Items []menuLanguageResponse `json:"items"`
}

func (h *Handlers) ListMenus(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, err := parseIntParam(query.Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page")
		return
	}
	pageSize, err := parseIntParam(query.Get("page_size"), menudomain.DefaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page_size")
		return
	}

	result, err := h.Menus.ListMenus(r.Context(), user.ID, page, pageSize)
	if err != nil {
		h.writeMenuError(w, "menus.list: list menus failed", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, toMenuPageResponse(result))
}

func (h *Handlers) GetOwnedMenu(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	slug, ok := requirePathParam(w, r, "slug")
	if !ok {
		return
	}

	view, err := h.Menus.GetOwnedMenuBySlug(r.Context(), user.ID, slug)
	if err != nil {
		h.writeMenuError(w, "menus.get: get menu failed", err, "user_id", user.ID, "slug", slug)
		return
	}

	writeJSON(w, http.StatusOK, toMenuViewResponse(view))
}

func (h *Handlers) UpsertMenu(w http.ResponseWriter, r *http.Request) {
	var req upsertMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	menu, err := h.Menus.UpsertMenu(r.Context(), menudomain.UpsertMenuInput{
		ID:            strings.TrimSpace(req.ID),
		UserID:        user.ID,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		h.writeMenuError(w, "menus.upsert: upsert menu failed", err, "user_id", user.ID, "menu_id", req.ID)
		return
	}

	status := http.StatusOK
	if strings.TrimSpace(req.ID) == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, toMenuResponse(*menu))
}

func (h *Handlers) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}

	if err := h.Menus.DeleteMenu(r.Context(), user.ID, menuID); err != nil {
		h.writeMenuError(w, "menus.delete: delete menu failed", err, "user_id", user.ID, "menu_id", menuID)
		return
	}

	writeNoContent(w)
}

func (h *Handlers) PublishMenu(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}

	menu, err := h.Menus.PublishMenu(r.Context(), user.ID, menuID)
	if err != nil {
		h.writeMenuError(w, "menus.publish: publish menu failed", err, "user_id", user.ID, "menu_id", menuID)
		return
	}

	writeJSON(w, http.StatusOK, toMenuResponse(*menu))
}

func (h *Handlers) UnpublishMenu(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}

	menu, err := h.Menus.UnpublishMenu(r.Context(), user.ID, menuID)
	if err != nil {
		h.writeMenuError(w, "menus.unpublish: unpublish menu failed", err, "user_id", user.ID, "menu_id", menuID)
		return
	}

	writeJSON(w, http.StatusOK, toMenuResponse(*menu))
}

func (h *Handlers) UpdateMenuImage(w http.ResponseWriter, r *http.Request) {
	var req menuImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}
	kind := menudomain.ImageKind(strings.ToLower(pathParam(r, "kind")))

	menu, err := h.Menus.UpdateMenuImage(r.Context(), menudomain.UpdateMenuImageInput{
		UserID: user.ID,
		MenuID: menuID,
		Kind:   kind,
		URL:    req.URL,
	})
	if err != nil {
		h.writeMenuError(w, "menus.update_image: update image failed", err, "user_id", user.ID, "menu_id", menuID, "kind", kind)
		return
	}

	writeJSON(w, http.StatusOK, toMenuResponse(*menu))
}

func (h *Handlers) UpdateMenuSocialLinks(w http.ResponseWriter, r *http.Request) {
	var req socialLinksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}

	menu, err := h.Menus.UpdateMenuSocialLinks(r.Context(), user.ID, menuID, menudomain.SocialLinks{
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		TikTok:       req.TikTok,
		Website:      req.Website,
		GoogleReview: req.GoogleReview,
	})
	if err != nil {
		h.writeMenuError(w, "menus.update_socials: update social links failed", err, "user_id", user.ID, "menu_id", menuID)
		return
	}

	writeJSON(w, http.StatusOK, toMenuResponse(*menu))
}

func (h *Handlers) SetMenuLanguages(w http.ResponseWriter, r *http.Request) {
	var req menuLanguagesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	menuID, ok := requireIDParam(w, r, "id", menudomain.ErrMenuNotFound)
	if !ok {
		return
	}

	languages, err := h.Menus.SetMenuLanguages(r.Context(), user.ID, menuID, req.LanguageIDs)
	if err != nil {
		h.writeMenuError(w, "menus.set_languages: set menu languages failed", err, "user_id", user.ID, "menu_id", menuID)
		return
	}

	writeJSON(w, http.StatusOK, menuLanguagesResponse{Items: toMenuLanguageResponses(languages)})
}
