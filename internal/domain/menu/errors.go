package menu

import "errors"

var (
	ErrMenuNotFound           = errors.New("menu not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrDishNotFound           = errors.New("dish not found")
	ErrVariantNotFound        = errors.New("variant not found")
	ErrLanguageNotFound       = errors.New("language not found")
	ErrForbidden              = errors.New("forbidden")
	ErrSubscriptionRequired   = errors.New("an active subscription is required to publish a menu")
	ErrDefaultLanguageMissing = errors.New("default language missing")
	ErrSlugTaken              = errors.New("slug already taken")
	ErrSlugGenerationFailed   = errors.New("slug generation failed")
	ErrInvalidSlug            = errors.New("slug is required")
	ErrNameRequired           = errors.New("name is required")
	ErrCityRequired           = errors.New("city is required")
	ErrMenuIDRequired         = errors.New("menu id is required")
	ErrDishIDRequired         = errors.New("dish id is required")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidTag             = errors.New("invalid tag")
	ErrDuplicateTag           = errors.New("duplicate tag")
	ErrInvalidTranslation     = errors.New("invalid translation")
	ErrDuplicateTranslation   = errors.New("duplicate translation language")
	ErrInvalidImageKind       = errors.New("invalid image kind")
)
