package handler

import (
	"context"
	"time"

	menudomain "menu-app-go/internal/domain/menu"
	"menu-app-go/pkg/logger"
)

// MenuService is the slice of the menu domain the HTTP layer depends on.
type MenuService interface {
	GetPublicMenuBySlug(ctx context.Context, slug string) (*menudomain.MenuView, error)
	GetOwnedMenuBySlug(ctx context.Context, userID, slug string) (*menudomain.MenuView, error)
	ListMenus(ctx context.Context, userID string, page, pageSize int) (*menudomain.MenuPage, error)
	ListLanguages(ctx context.Context) ([]menudomain.Language, error)

	UpsertMenu(ctx context.Context, input menudomain.UpsertMenuInput) (*menudomain.Menu, error)
	DeleteMenu(ctx context.Context, userID, menuID string) error
	PublishMenu(ctx context.Context, userID, menuID string) (*menudomain.Menu, error)
	UnpublishMenu(ctx context.Context, userID, menuID string) (*menudomain.Menu, error)
	UpdateMenuImage(ctx context.Context, input menudomain.UpdateMenuImageInput) (*menudomain.Menu, error)
	UpdateMenuSocialLinks(ctx context.Context, userID, menuID string, links menudomain.SocialLinks) (*menudomain.Menu, error)
	SetMenuLanguages(ctx context.Context, userID, menuID string, languageIDs []string) ([]menudomain.MenuLanguageView, error)

	UpsertCategory(ctx context.Context, input menudomain.UpsertCategoryInput) (*menudomain.CategoryView, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	UpsertDish(ctx context.Context, input menudomain.UpsertDishInput) (*menudomain.DishView, error)
	DeleteDish(ctx context.Context, userID, dishID string) error
	UpdateDishPicture(ctx context.Context, input menudomain.UpdateDishPictureInput) (*menudomain.Dish, error)
	UpsertVariant(ctx context.Context, input menudomain.UpsertVariantInput) (*menudomain.VariantView, error)
	DeleteVariant(ctx context.Context, userID, variantID string) error
}

// SubscriptionStatus reports the raw provider status of a user's subscription.
type SubscriptionStatus interface {
	Status(ctx context.Context, userID string) (string, error)
}

type Pinger func(ctx context.Context) error

type ResponseTimes interface {
	AverageResponseTime(route string) (time.Duration, int)
}

type Handlers struct {
	Menus         MenuService
	subscriptions SubscriptionStatus
	ping          Pinger
	perf          ResponseTimes
	log           logger.Logger
}

func New(menus MenuService, subscriptions SubscriptionStatus, ping Pinger, perf ResponseTimes, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handlers{
		Menus:         menus,
		subscriptions: subscriptions,
		ping:          ping,
		perf:          perf,
		log:           log,
	}
}
