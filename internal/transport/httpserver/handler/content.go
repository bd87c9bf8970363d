package handler

import (
	"net/http"
	"strings"

	menudomain "menu-app-go/internal/domain/menu"

	"github.com/shopspring/decimal"
)

type upsertCategoryRequest struct {
	ID           string               `json:"id"`
	Translations []translationRequest `json:"translations"`
}

type upsertDishRequest struct {
	ID            string               `json:"id"`
	CategoryID    *string              `json:"category_id"`
	Price         decimal.Decimal      `json:"price"`
	Carbohydrates *int                 `json:"carbohydrates"`
	Fats          *int                 `json:"fats"`
	Protein       *int                 `json:"protein"`
	Calories      *int                 `json:"calories"`
	Tags          []menudomain.Tag     `json:"tags"`
	Translations  []translationRequest `json:"translations"`
}

type upsertVariantRequest struct {
	ID           string               `json:"id"`
	Price        *decimal.Decimal     `json:"price"`
	Translations []translationRequest `json:"translations"`
}

type dishPictureRequest struct {
	URL *string `json:"url"`
}

func (h *Handlers) UpsertCategory(w http.ResponseWriter, r *http.Request) {
	var req upsertCategoryRequest
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

	category, err := h.Menus.UpsertCategory(r.Context(), menudomain.UpsertCategoryInput{
		ID:           strings.TrimSpace(req.ID),
		MenuID:       menuID,
		UserID:       user.ID,
		Translations: toTranslationInputs(req.Translations),
	})
	if err != nil {
		h.writeMenuError(w, "categories.upsert: upsert category failed", err, "user_id", user.ID, "menu_id", menuID, "category_id", req.ID)
		return
	}

	writeJSON(w, createdOrOK(req.ID), toCategoryResponse(*category))
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	categoryID, ok := requireIDParam(w, r, "id", menudomain.ErrCategoryNotFound)
	if !ok {
		return
	}

	if err := h.Menus.DeleteCategory(r.Context(), user.ID, categoryID); err != nil {
		h.writeMenuError(w, "categories.delete: delete category failed", err, "user_id", user.ID, "category_id", categoryID)
		return
	}

	writeNoContent(w)
}

func (h *Handlers) UpsertDish(w http.ResponseWriter, r *http.Request) {
	var req upsertDishRequest
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

	dish, err := h.Menus.UpsertDish(r.Context(), menudomain.UpsertDishInput{
		ID:            strings.TrimSpace(req.ID),
		MenuID:        menuID,
		UserID:        user.ID,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
		Protein:       req.Protein,
		Calories:      req.Calories,
		Tags:          req.Tags,
		Translations:  toTranslationInputs(req.Translations),
	})
	if err != nil {
		h.writeMenuError(w, "dishes.upsert: upsert dish failed", err, "user_id", user.ID, "menu_id", menuID, "dish_id", req.ID)
		return
	}

	writeJSON(w, createdOrOK(req.ID), toDishResponse(*dish))
}

func (h *Handlers) DeleteDish(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	dishID, ok := requireIDParam(w, r, "id", menudomain.ErrDishNotFound)
	if !ok {
		return
	}

	if err := h.Menus.DeleteDish(r.Context(), user.ID, dishID); err != nil {
		h.writeMenuError(w, "dishes.delete: delete dish failed", err, "user_id", user.ID, "dish_id", dishID)
		return
	}

	writeNoContent(w)
}

func (h *Handlers) UpdateDishPicture(w http.ResponseWriter, r *http.Request) {
	var req dishPictureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	dishID, ok := requireIDParam(w, r, "id", menudomain.ErrDishNotFound)
	if !ok {
		return
	}

	dish, err := h.Menus.UpdateDishPicture(r.Context(), menudomain.UpdateDishPictureInput{
		UserID: user.ID,
		DishID: dishID,
		URL:    req.URL,
	})
	if err != nil {
		h.writeMenuError(w, "dishes.update_picture: update picture failed", err, "user_id", user.ID, "dish_id", dishID)
		return
	}

	writeJSON(w, http.StatusOK, toDishResponse(menudomain.DishView{Dish: *dish}))
}

func (h *Handlers) UpsertVariant(w http.ResponseWriter, r *http.Request) {
	var req upsertVariantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	dishID, ok := requireIDParam(w, r, "id", menudomain.ErrDishNotFound)
	if !ok {
		return
	}

	variant, err := h.Menus.UpsertVariant(r.Context(), menudomain.UpsertVariantInput{
		ID:           strings.TrimSpace(req.ID),
		DishID:       dishID,
		UserID:       user.ID,
		Price:        req.Price,
		Translations: toTranslationInputs(req.Translations),
	})
	if err != nil {
		h.writeMenuError(w, "variants.upsert: upsert variant failed", err, "user_id", user.ID, "dish_id", dishID, "variant_id", req.ID)
		return
	}

	writeJSON(w, createdOrOK(req.ID), toVariantResponse(*variant))
}

func (h *Handlers) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	variantID, ok := requireIDParam(w, r, "id", menudomain.ErrVariantNotFound)
	if !ok {
		return
	}

	if err := h.Menus.DeleteVariant(r.Context(), user.ID, variantID); err != nil {
		h.writeMenuError(w, "variants.delete: delete variant failed", err, "user_id", user.ID, "variant_id", variantID)
		return
	}

	writeNoContent(w)
}

func createdOrOK(id string) int {
	if strings.TrimSpace(id) == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}
