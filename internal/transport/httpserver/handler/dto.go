package handler

import (
	"time"

	menudomain "menu-app-go/internal/domain/menu"
)

type translationRequest struct {
	LanguageID  string `json:"language_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type translationResponse struct {
	LanguageID  string `json:"language_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type menuResponse struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"user_id"`
	Name               string                 `json:"name"`
	Address            string                 `json:"address"`
	City               string                 `json:"city"`
	ContactNumber      string                 `json:"contact_number"`
	Slug               string                 `json:"slug"`
	IsPublished        bool                   `json:"is_published"`
	BackgroundImageURL *string                `json:"background_image_url"`
	LogoImageURL       *string                `json:"logo_image_url"`
	SocialLinks        menudomain.SocialLinks `json:"social_links"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type menuViewResponse struct {
	menuResponse
	Dishes     []dishResponse         `json:"dishes"`
	Categories []categoryResponse     `json:"categories"`
	Languages  []menuLanguageResponse `json:"languages"`
}

type menuLanguageResponse struct {
	LanguageID string `json:"language_id"`
	ISOCode    string `json:"iso_code"`
	Name       string `json:"name"`
	FlagURL    string `json:"flag_url"`
	IsDefault  bool   `json:"is_default"`
}

type languageResponse struct {
	ID      string `json:"id"`
	ISOCode string `json:"iso_code"`
	Name    string `json:"name"`
	FlagURL string `json:"flag_url"`
}

type categoryResponse struct {
	ID           string                `json:"id"`
	MenuID       string                `json:"menu_id"`
	CreatedAt    time.Time             `json:"created_at"`
	Translations []translationResponse `json:"translations"`
}

type dishResponse struct {
	ID            string                `json:"id"`
	MenuID        string                `json:"menu_id"`
	CategoryID    *string               `json:"category_id"`
	Price         string                `json:"price"`
	PriceMinor    int64                 `json:"price_minor"`
	Carbohydrates *int                  `json:"carbohydrates"`
	Fats          *int                  `json:"fats"`
	Protein       *int                  `json:"protein"`
	Calories      *int                  `json:"calories"`
	PictureURL    *string               `json:"picture_url"`
	Tags          []menudomain.Tag      `json:"tags"`
	Translations  []translationResponse `json:"translations"`
	Variants      []variantResponse     `json:"variants"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type variantResponse struct {
	ID           string                `json:"id"`
	DishID       string                `json:"dish_id"`
	Price        *string               `json:"price"`
	PriceMinor   *int64                `json:"price_minor"`
	Translations []translationResponse `json:"translations"`
}

type menuPageResponse struct {
	Items      []menuSummaryResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	Total      int64                 `json:"total"`
	TotalPages int                   `json:"total_pages"`
}

type menuSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"is_published"`
	DishCount   int64     `json:"dish_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTranslationInputs(items []translationRequest) []menudomain.TranslationInput {
	inputs := make([]menudomain.TranslationInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, menudomain.TranslationInput{
			LanguageID:  item.LanguageID,
			Name:        item.Name,
			Description: item.Description,
		})
	}
	return inputs
}

func toMenuResponse(menu menudomain.Menu) menuResponse {
	return menuResponse{
		ID:                 menu.ID,
		UserID:             menu.UserID,
		Name:               menu.Name,
		Address:            menu.Address,
		City:               menu.City,
		ContactNumber:      menu.ContactNumber,
		Slug:               menu.Slug,
		IsPublished:        menu.IsPublished,
		BackgroundImageURL: menu.BackgroundImageURL,
		LogoImageURL:       menu.LogoImageURL,
		SocialLinks:        menu.SocialLinks.Data(),
		CreatedAt:          menu.CreatedAt,
		UpdatedAt:          menu.UpdatedAt,
	}
}

func toMenuViewResponse(view *menudomain.MenuView) menuViewResponse {
	dishes := make([]dishResponse, 0, len(view.Dishes))
	for _, dish := range view.Dishes {
		dishes = append(dishes, toDishResponse(dish))
	}
	categories := make([]categoryResponse, 0, len(view.Categories))
	for _, category := range view.Categories {
		categories = append(categories, toCategoryResponse(category))
	}
	return menuViewResponse{
		menuResponse: toMenuResponse(view.Menu),
		Dishes:       dishes,
		Categories:   categories,
		Languages:    toMenuLanguageResponses(view.Languages),
	}
}

func toMenuLanguageResponses(items []menudomain.MenuLanguageView) []menuLanguageResponse {
	languages := make([]menuLanguageResponse, 0, len(items))
	for _, item := range items {
		languages = append(languages, menuLanguageResponse{
			LanguageID: item.LanguageID,
			ISOCode:    item.ISOCode,
			Name:       item.Name,
			FlagURL:    item.FlagURL,
			IsDefault:  item.IsDefault,
		})
	}
	return languages
}

func toCategoryResponse(view menudomain.CategoryView) categoryResponse {
	translations := make([]translationResponse, 0, len(view.Translations))
	for _, t := range view.Translations {
		translations = append(translations, translationResponse{LanguageID: t.LanguageID, Name: t.Name})
	}
	return categoryResponse{
		ID:           view.ID,
		MenuID:       view.MenuID,
		CreatedAt:    view.CreatedAt,
		Translations: translations,
	}
}

func toDishResponse(view menudomain.DishView) dishResponse {
	translations := make([]translationResponse, 0, len(view.Translations))
	for _, t := range view.Translations {
		translations = append(translations, translationResponse{LanguageID: t.LanguageID, Name: t.Name, Description: t.Description})
	}
	variants := make([]variantResponse, 0, len(view.Variants))
	for _, variant := range view.Variants {
		variants = append(variants, toVariantResponse(variant))
	}
	tags := view.Tags
	if tags == nil {
		tags = []menudomain.Tag{}
	}
	return dishResponse{
		ID:            view.ID,
		MenuID:        view.MenuID,
		CategoryID:    view.CategoryID,
		Price:         formatPrice(view.Price),
		PriceMinor:    view.Price,
		Carbohydrates: view.Carbohydrates,
		Fats:          view.Fats,
		Protein:       view.Protein,
		Calories:      view.Calories,
		PictureURL:    view.PictureURL,
		Tags:          tags,
		Translations:  translations,
		Variants:      variants,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
}

func toVariantResponse(view menudomain.VariantView) variantResponse {
	translations := make([]translationResponse, 0, len(view.Translations))
	for _, t := range view.Translations {
		translations = append(translations, translationResponse{LanguageID: t.LanguageID, Name: t.Name, Description: t.Description})
	}
	var price *string
	if view.Price != nil {
		formatted := formatPrice(*view.Price)
		price = &formatted
	}
	return variantResponse{
		ID:           view.ID,
		DishID:       view.DishID,
		Price:        price,
		PriceMinor:   view.Price,
		Translations: translations,
	}
}

func toMenuPageResponse(page *menudomain.MenuPage) menuPageResponse {
	items := make([]menuSummaryResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, menuSummaryResponse{
			ID:          item.ID,
			Name:        item.Name,
			City:        item.City,
			Slug:        item.Slug,
			IsPublished: item.IsPublished,
			DishCount:   item.DishCount,
			UpdatedAt:   item.UpdatedAt,
		})
	}
	return menuPageResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func formatPrice(minor int64) string {
	return menudomain.FromMinorUnits(minor).StringFixed(2)
}
