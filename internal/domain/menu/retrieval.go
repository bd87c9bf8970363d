package menu

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// GetMenuBySlug assembles the full menu view. Child rows are loaded with one
// query per table scoped to the menu, never one query per dish or category.
func (s *Service) GetMenuBySlug(ctx context.Context, slug string, includeUnpublished bool) (*MenuView, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	key := cacheKey(slug, includeUnpublished)
	if view, ok := s.cache.Get(key); ok {
		return view, nil
	}

	menu, err := s.repo.GetMenuBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !includeUnpublished && !menu.IsPublished {
		return nil, ErrMenuNotFound
	}

	view, err := s.loadMenuView(ctx, menu)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, view, s.cacheTTL)
	return view, nil
}

func (s *Service) GetPublicMenuBySlug(ctx context.Context, slug string) (*MenuView, error) {
	return s.GetMenuBySlug(ctx, slug, false)
}

// GetOwnedMenuBySlug returns the owner's preview of a menu, published or not.
func (s *Service) GetOwnedMenuBySlug(ctx context.Context, userID, slug string) (*MenuView, error) {
	view, err := s.GetMenuBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	if err := CheckOwnership(view.Menu.UserID, userID); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *Service) ListMenus(ctx context.Context, userID string, page, pageSize int) (*MenuPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var (
		items []MenuSummary
		total int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		items, err = s.repo.ListMenusByOwner(groupCtx, userID, offset, pageSize)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = s.repo.CountMenusByOwner(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []MenuSummary{}
	}
	if len(items) > pageSize {
		items = items[:pageSize]
	}

	return &MenuPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: TotalPages(total, pageSize),
	}, nil
}

func (s *Service) loadMenuView(ctx context.Context, menu *Menu) (*MenuView, error) {
	var (
		dishes               []Dish
		dishTranslations     []DishTranslation
		dishTags             []DishTag
		variants             []Variant
		variantTranslations  []VariantTranslation
		categories           []Category
		categoryTranslations []CategoryTranslation
		languages            []MenuLanguageView
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		dishes, err = s.repo.ListDishesByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		dishTranslations, err = s.repo.ListDishTranslationsByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		dishTags, err = s.repo.ListDishTagsByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		variants, err = s.repo.ListVariantsByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		variantTranslations, err = s.repo.ListVariantTranslationsByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		categories, err = s.repo.ListCategoriesByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		categoryTranslations, err = s.repo.ListCategoryTranslationsByMenu(groupCtx, menu.ID)
		return err
	})
	group.Go(func() (err error) {
		languages, err = s.repo.ListMenuLanguages(groupCtx, menu.ID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	variantsByDish := groupVariantsByDish(variants, variantTranslations)

	translationsByDish := make(map[string][]DishTranslation, len(dishes))
	for _, translation := range dishTranslations {
		translationsByDish[translation.DishID] = append(translationsByDish[translation.DishID], translation)
	}

	tagsByDish := make(map[string][]Tag, len(dishes))
	for _, tag := range dishTags {
		tagsByDish[tag.DishID] = append(tagsByDish[tag.DishID], tag.Tag)
	}

	dishViews := make([]DishView, 0, len(dishes))
	for _, dish := range dishes {
		dishViews = append(dishViews, DishView{
			Dish:         dish,
			Translations: nonNil(translationsByDish[dish.ID]),
			Tags:         nonNil(tagsByDish[dish.ID]),
			Variants:     nonNil(variantsByDish[dish.ID]),
		})
	}

	categoryTranslationsByCategory := make(map[string][]CategoryTranslation, len(categories))
	for _, translation := range categoryTranslations {
		categoryTranslationsByCategory[translation.CategoryID] = append(categoryTranslationsByCategory[translation.CategoryID], translation)
	}

	categoryViews := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		categoryViews = append(categoryViews, CategoryView{
			Category:     category,
			Translations: nonNil(categoryTranslationsByCategory[category.ID]),
		})
	}

	return &MenuView{
		Menu:       *menu,
		Dishes:     dishViews,
		Categories: categoryViews,
		Languages:  nonNil(languages),
	}, nil
}

func groupVariantsByDish(variants []Variant, translations []VariantTranslation) map[string][]VariantView {
	translationsByVariant := make(map[string][]VariantTranslation, len(variants))
	for _, translation := range translations {
		translationsByVariant[translation.VariantID] = append(translationsByVariant[translation.VariantID], translation)
	}

	variantsByDish := make(map[string][]VariantView)
	for _, variant := range variants {
		variantsByDish[variant.DishID] = append(variantsByDish[variant.DishID], VariantView{
			Variant:      variant,
			Translations: nonNil(translationsByVariant[variant.ID]),
		})
	}
	return variantsByDish
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
