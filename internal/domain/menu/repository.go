package menu

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetMenuBySlug(ctx context.Context, slug string) (*Menu, error)
	GetMenuByID(ctx context.Context, menuID string) (*Menu, error)
	ListMenusByOwner(ctx context.Context, userID string, offset, limit int) ([]MenuSummary, error)
	CountMenusByOwner(ctx context.Context, userID string) (int64, error)
	CreateMenu(ctx context.Context, menu *Menu) error
	UpdateMenuDetails(ctx context.Context, menu *Menu) error
	UpdateMenuPublished(ctx context.Context, menuID string, published bool) error
	UpdateMenuImage(ctx context.Context, menuID string, kind ImageKind, url *string) error
	UpdateMenuSocialLinks(ctx context.Context, menuID string, links SocialLinks) error
	DeleteMenu(ctx context.Context, userID, menuID string) (string, error)
	IsSlugTaken(ctx context.Context, slug string) (bool, error)

	ListLanguages(ctx context.Context) ([]Language, error)
	GetLanguageByISOCode(ctx context.Context, isoCode string) (*Language, error)
	CountLanguagesByIDs(ctx context.Context, languageIDs []string) (int64, error)
	ListMenuLanguages(ctx context.Context, menuID string) ([]MenuLanguageView, error)
	AddMenuLanguages(ctx context.Context, links []MenuLanguage) error
	DeleteNonDefaultMenuLanguages(ctx context.Context, menuID string) error

	GetCategoryOwnership(ctx context.Context, categoryID string) (*Ownership, error)
	ListCategoriesByMenu(ctx context.Context, menuID string) ([]Category, error)
	ListCategoryTranslationsByMenu(ctx context.Context, menuID string) ([]CategoryTranslation, error)
	CreateCategory(ctx context.Context, category *Category) error
	ReplaceCategoryTranslations(ctx context.Context, categoryID string, translations []CategoryTranslation) error
	DeleteCategory(ctx context.Context, userID, categoryID string) (string, error)

	GetDishByID(ctx context.Context, dishID string) (*Dish, error)
	GetDishOwnership(ctx context.Context, dishID string) (*Ownership, error)
	ListDishesByMenu(ctx context.Context, menuID string) ([]Dish, error)
	ListDishTranslationsByMenu(ctx context.Context, menuID string) ([]DishTranslation, error)
	ListDishTagsByMenu(ctx context.Context, menuID string) ([]DishTag, error)
	CreateDish(ctx context.Context, dish *Dish) error
	UpdateDish(ctx context.Context, dish *Dish) error
	UpdateDishPicture(ctx context.Context, dishID string, url *string) error
	ReplaceDishTranslations(ctx context.Context, dishID string, translations []DishTranslation) error
	ReplaceDishTags(ctx context.Context, dishID string, tags []DishTag) error
	DeleteDish(ctx context.Context, userID, dishID string) (string, error)

	GetVariantOwnership(ctx context.Context, variantID string) (*Ownership, error)
	ListVariantsByMenu(ctx context.Context, menuID string) ([]Variant, error)
	ListVariantTranslationsByMenu(ctx context.Context, menuID string) ([]VariantTranslation, error)
	CreateVariant(ctx context.Context, variant *Variant) error
	UpdateVariant(ctx context.Context, variant *Variant) error
	ReplaceVariantTranslations(ctx context.Context, variantID string, translations []VariantTranslation) error
	DeleteVariant(ctx context.Context, userID, variantID string) (string, error)
}

// SubscriptionReader resolves the payment provider status recorded for a user.
type SubscriptionReader interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// ObjectStorage removes uploaded images by their public URL.
type ObjectStorage interface {
	Remove(ctx context.Context, objectURL string) error
}

type noopSubscriptions struct{}

func (noopSubscriptions) IsActive(context.Context, string) (bool, error) {
	return false, nil
}

type noopStorage struct{}

func (noopStorage) Remove(context.Context, string) error {
	return nil
}
