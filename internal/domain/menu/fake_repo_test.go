package menu

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"
)

const (
	langEN = "5d0a1c7e-2f44-4b8e-9c1a-0e6f3b2d7a02"
	langDE = "5d0a1c7e-2f44-4b8e-9c1a-0e6f3b2d7a01"
	langFR = "5d0a1c7e-2f44-4b8e-9c1a-0e6f3b2d7a03"
)

type fakeMenuRepo struct {
	mu sync.Mutex

	menus                map[string]Menu
	languages            map[string]Language
	menuLanguages        []MenuLanguage
	categories           map[string]Category
	categoryTranslations []CategoryTranslation
	dishes               map[string]Dish
	dishTranslations     []DishTranslation
	dishTags             []DishTag
	variants             map[string]Variant
	variantTranslations  []VariantTranslation

	writes       int
	reads        int
	createErrs   []error
	updateErrs   []error
	listMenusErr error
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		menus: make(map[string]Menu),
		languages: map[string]Language{
			langEN: {ID: langEN, ISOCode: "en", Name: "English", FlagURL: "/flags/en.svg"},
			langDE: {ID: langDE, ISOCode: "de", Name: "Deutsch", FlagURL: "/flags/de.svg"},
			langFR: {ID: langFR, ISOCode: "fr", Name: "Français", FlagURL: "/flags/fr.svg"},
		},
		categories: make(map[string]Category),
		dishes:     make(map[string]Dish),
		variants:   make(map[string]Variant),
	}
}

func (r *fakeMenuRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeMenuRepo) read() {
	r.reads++
}

func (r *fakeMenuRepo) write() {
	r.writes++
}

func (r *fakeMenuRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *fakeMenuRepo) readCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

func (r *fakeMenuRepo) GetMenuBySlug(ctx context.Context, slug string) (*Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	for _, menu := range r.menus {
		if menu.Slug == slug {
			m := menu
			return &m, nil
		}
	}
	return nil, ErrMenuNotFound
}

func (r *fakeMenuRepo) GetMenuByID(ctx context.Context, menuID string) (*Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	menu, ok := r.menus[menuID]
	if !ok {
		return nil, ErrMenuNotFound
	}
	return &menu, nil
}

func (r *fakeMenuRepo) ListMenusByOwner(ctx context.Context, userID string, offset, limit int) ([]MenuSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	if r.listMenusErr != nil {
		return nil, r.listMenusErr
	}

	items := make([]MenuSummary, 0)
	for _, menu := range r.menus {
		if menu.UserID != userID {
			continue
		}
		var dishCount int64
		for _, dish := range r.dishes {
			if dish.MenuID == menu.ID {
				dishCount++
			}
		}
		items = append(items, MenuSummary{
			ID:          menu.ID,
			Name:        menu.Name,
			City:        menu.City,
			Slug:        menu.Slug,
			IsPublished: menu.IsPublished,
			DishCount:   dishCount,
			UpdatedAt:   menu.UpdatedAt,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})

	if offset >= len(items) {
		return []MenuSummary{}, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeMenuRepo) CountMenusByOwner(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	var count int64
	for _, menu := range r.menus {
		if menu.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeMenuRepo) CreateMenu(ctx context.Context, menu *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		return err
	}
	for _, existing := range r.menus {
		if existing.Slug == menu.Slug {
			return ErrSlugTaken
		}
	}
	r.write()
	now := time.Now().UTC()
	menu.CreatedAt = now
	menu.UpdatedAt = now
	r.menus[menu.ID] = *menu
	return nil
}

func (r *fakeMenuRepo) UpdateMenuDetails(ctx context.Context, menu *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updateErrs) > 0 {
		err := r.updateErrs[0]
		r.updateErrs = r.updateErrs[1:]
		return err
	}
	r.write()
	existing, ok := r.menus[menu.ID]
	if !ok {
		return ErrMenuNotFound
	}
	existing.Name = menu.Name
	existing.Address = menu.Address
	existing.City = menu.City
	existing.ContactNumber = menu.ContactNumber
	existing.Slug = menu.Slug
	existing.UpdatedAt = menu.UpdatedAt
	r.menus[menu.ID] = existing
	return nil
}

func (r *fakeMenuRepo) UpdateMenuPublished(ctx context.Context, menuID string, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	menu := r.menus[menuID]
	menu.IsPublished = published
	r.menus[menuID] = menu
	return nil
}

func (r *fakeMenuRepo) UpdateMenuImage(ctx context.Context, menuID string, kind ImageKind, url *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	menu := r.menus[menuID]
	if kind == ImageLogo {
		menu.LogoImageURL = url
	} else {
		menu.BackgroundImageURL = url
	}
	r.menus[menuID] = menu
	return nil
}

func (r *fakeMenuRepo) UpdateMenuSocialLinks(ctx context.Context, menuID string, links SocialLinks) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	menu := r.menus[menuID]
	menu.SocialLinks = datatypes.NewJSONType(links)
	r.menus[menuID] = menu
	return nil
}

func (r *fakeMenuRepo) DeleteMenu(ctx context.Context, userID, menuID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menu, ok := r.menus[menuID]
	if !ok || menu.UserID != userID {
		return "", ErrMenuNotFound
	}
	r.write()
	for id, dish := range r.dishes {
		if dish.MenuID == menuID {
			r.deleteDishLocked(id)
		}
	}
	for id, category := range r.categories {
		if category.MenuID == menuID {
			r.deleteCategoryLocked(id)
		}
	}
	links := r.menuLanguages[:0]
	for _, link := range r.menuLanguages {
		if link.MenuID != menuID {
			links = append(links, link)
		}
	}
	r.menuLanguages = links
	delete(r.menus, menuID)
	return menu.Slug, nil
}

func (r *fakeMenuRepo) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, menu := range r.menus {
		if menu.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMenuRepo) ListLanguages(ctx context.Context) ([]Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]Language, 0, len(r.languages))
	for _, language := range r.languages {
		items = append(items, language)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ISOCode < items[j].ISOCode })
	return items, nil
}

func (r *fakeMenuRepo) GetLanguageByISOCode(ctx context.Context, isoCode string) (*Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, language := range r.languages {
		if language.ISOCode == isoCode {
			l := language
			return &l, nil
		}
	}
	return nil, ErrLanguageNotFound
}

func (r *fakeMenuRepo) CountLanguagesByIDs(ctx context.Context, languageIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, id := range languageIDs {
		if _, ok := r.languages[id]; ok {
			count++
		}
	}
	return count, nil
}

func (r *fakeMenuRepo) ListMenuLanguages(ctx context.Context, menuID string) ([]MenuLanguageView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]MenuLanguageView, 0)
	for _, link := range r.menuLanguages {
		if link.MenuID != menuID {
			continue
		}
		language := r.languages[link.LanguageID]
		items = append(items, MenuLanguageView{
			LanguageID: link.LanguageID,
			ISOCode:    language.ISOCode,
			Name:       language.Name,
			FlagURL:    language.FlagURL,
			IsDefault:  link.IsDefault,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].IsDefault != items[j].IsDefault {
			return items[i].IsDefault
		}
		return items[i].ISOCode < items[j].ISOCode
	})
	return items, nil
}

func (r *fakeMenuRepo) AddMenuLanguages(ctx context.Context, links []MenuLanguage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	for _, link := range links {
		exists := false
		for _, current := range r.menuLanguages {
			if current.MenuID == link.MenuID && current.LanguageID == link.LanguageID {
				exists = true
				break
			}
		}
		if !exists {
			r.menuLanguages = append(r.menuLanguages, link)
		}
	}
	return nil
}

func (r *fakeMenuRepo) DeleteNonDefaultMenuLanguages(ctx context.Context, menuID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	links := r.menuLanguages[:0]
	for _, link := range r.menuLanguages {
		if link.MenuID == menuID && !link.IsDefault {
			continue
		}
		links = append(links, link)
	}
	r.menuLanguages = links
	return nil
}

func (r *fakeMenuRepo) GetCategoryOwnership(ctx context.Context, categoryID string) (*Ownership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[categoryID]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	menu := r.menus[category.MenuID]
	return &Ownership{MenuID: menu.ID, MenuSlug: menu.Slug, OwnerID: menu.UserID}, nil
}

func (r *fakeMenuRepo) ListCategoriesByMenu(ctx context.Context, menuID string) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]Category, 0)
	for _, category := range r.categories {
		if category.MenuID == menuID {
			items = append(items, category)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeMenuRepo) ListCategoryTranslationsByMenu(ctx context.Context, menuID string) ([]CategoryTranslation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]CategoryTranslation, 0)
	for _, translation := range r.categoryTranslations {
		if r.categories[translation.CategoryID].MenuID == menuID {
			items = append(items, translation)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) CreateCategory(ctx context.Context, category *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	category.CreatedAt = time.Now().UTC()
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeMenuRepo) ReplaceCategoryTranslations(ctx context.Context, categoryID string, translations []CategoryTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	kept := r.categoryTranslations[:0]
	for _, translation := range r.categoryTranslations {
		if translation.CategoryID != categoryID {
			kept = append(kept, translation)
		}
	}
	r.categoryTranslations = append(kept, translations...)
	return nil
}

func (r *fakeMenuRepo) DeleteCategory(ctx context.Context, userID, categoryID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[categoryID]
	if !ok {
		return "", ErrCategoryNotFound
	}
	menu := r.menus[category.MenuID]
	if menu.UserID != userID {
		return "", ErrCategoryNotFound
	}
	r.write()
	r.deleteCategoryLocked(categoryID)
	return menu.Slug, nil
}

func (r *fakeMenuRepo) deleteCategoryLocked(categoryID string) {
	for id, dish := range r.dishes {
		if dish.CategoryID != nil && *dish.CategoryID == categoryID {
			dish.CategoryID = nil
			r.dishes[id] = dish
		}
	}
	kept := r.categoryTranslations[:0]
	for _, translation := range r.categoryTranslations {
		if translation.CategoryID != categoryID {
			kept = append(kept, translation)
		}
	}
	r.categoryTranslations = kept
	delete(r.categories, categoryID)
}

func (r *fakeMenuRepo) GetDishByID(ctx context.Context, dishID string) (*Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dish, ok := r.dishes[dishID]
	if !ok {
		return nil, ErrDishNotFound
	}
	return &dish, nil
}

func (r *fakeMenuRepo) GetDishOwnership(ctx context.Context, dishID string) (*Ownership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dish, ok := r.dishes[dishID]
	if !ok {
		return nil, ErrDishNotFound
	}
	menu := r.menus[dish.MenuID]
	return &Ownership{DishID: dish.ID, MenuID: menu.ID, MenuSlug: menu.Slug, OwnerID: menu.UserID}, nil
}

func (r *fakeMenuRepo) ListDishesByMenu(ctx context.Context, menuID string) ([]Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]Dish, 0)
	for _, dish := range r.dishes {
		if dish.MenuID == menuID {
			items = append(items, dish)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeMenuRepo) ListDishTranslationsByMenu(ctx context.Context, menuID string) ([]DishTranslation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]DishTranslation, 0)
	for _, translation := range r.dishTranslations {
		if r.dishes[translation.DishID].MenuID == menuID {
			items = append(items, translation)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) ListDishTagsByMenu(ctx context.Context, menuID string) ([]DishTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]DishTag, 0)
	for _, tag := range r.dishTags {
		if r.dishes[tag.DishID].MenuID == menuID {
			items = append(items, tag)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) CreateDish(ctx context.Context, dish *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	now := time.Now().UTC()
	dish.CreatedAt = now
	dish.UpdatedAt = now
	r.dishes[dish.ID] = *dish
	return nil
}

func (r *fakeMenuRepo) UpdateDish(ctx context.Context, dish *Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	if _, ok := r.dishes[dish.ID]; !ok {
		return ErrDishNotFound
	}
	r.dishes[dish.ID] = *dish
	return nil
}

func (r *fakeMenuRepo) UpdateDishPicture(ctx context.Context, dishID string, url *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	dish := r.dishes[dishID]
	dish.PictureURL = url
	r.dishes[dishID] = dish
	return nil
}

func (r *fakeMenuRepo) ReplaceDishTranslations(ctx context.Context, dishID string, translations []DishTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	kept := r.dishTranslations[:0]
	for _, translation := range r.dishTranslations {
		if translation.DishID != dishID {
			kept = append(kept, translation)
		}
	}
	r.dishTranslations = append(kept, translations...)
	return nil
}

func (r *fakeMenuRepo) ReplaceDishTags(ctx context.Context, dishID string, tags []DishTag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	kept := r.dishTags[:0]
	for _, tag := range r.dishTags {
		if tag.DishID != dishID {
			kept = append(kept, tag)
		}
	}
	r.dishTags = append(kept, tags...)
	return nil
}

func (r *fakeMenuRepo) DeleteDish(ctx context.Context, userID, dishID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dish, ok := r.dishes[dishID]
	if !ok {
		return "", ErrDishNotFound
	}
	menu := r.menus[dish.MenuID]
	if menu.UserID != userID {
		return "", ErrDishNotFound
	}
	r.write()
	r.deleteDishLocked(dishID)
	return menu.Slug, nil
}

func (r *fakeMenuRepo) deleteDishLocked(dishID string) {
	for id, variant := range r.variants {
		if variant.DishID == dishID {
			r.deleteVariantLocked(id)
		}
	}
	translations := r.dishTranslations[:0]
	for _, translation := range r.dishTranslations {
		if translation.DishID != dishID {
			translations = append(translations, translation)
		}
	}
	r.dishTranslations = translations
	tags := r.dishTags[:0]
	for _, tag := range r.dishTags {
		if tag.DishID != dishID {
			tags = append(tags, tag)
		}
	}
	r.dishTags = tags
	delete(r.dishes, dishID)
}

func (r *fakeMenuRepo) GetVariantOwnership(ctx context.Context, variantID string) (*Ownership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	variant, ok := r.variants[variantID]
	if !ok {
		return nil, ErrVariantNotFound
	}
	dish := r.dishes[variant.DishID]
	menu := r.menus[dish.MenuID]
	return &Ownership{DishID: dish.ID, MenuID: menu.ID, MenuSlug: menu.Slug, OwnerID: menu.UserID}, nil
}

func (r *fakeMenuRepo) ListVariantsByMenu(ctx context.Context, menuID string) ([]Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]Variant, 0)
	for _, variant := range r.variants {
		if r.dishes[variant.DishID].MenuID == menuID {
			items = append(items, variant)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeMenuRepo) ListVariantTranslationsByMenu(ctx context.Context, menuID string) ([]VariantTranslation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.read()
	items := make([]VariantTranslation, 0)
	for _, translation := range r.variantTranslations {
		variant := r.variants[translation.VariantID]
		if r.dishes[variant.DishID].MenuID == menuID {
			items = append(items, translation)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) CreateVariant(ctx context.Context, variant *Variant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	variant.CreatedAt = time.Now().UTC()
	r.variants[variant.ID] = *variant
	return nil
}

func (r *fakeMenuRepo) UpdateVariant(ctx context.Context, variant *Variant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	existing, ok := r.variants[variant.ID]
	if !ok {
		return ErrVariantNotFound
	}
	existing.Price = variant.Price
	r.variants[variant.ID] = existing
	return nil
}

func (r *fakeMenuRepo) ReplaceVariantTranslations(ctx context.Context, variantID string, translations []VariantTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.write()
	kept := r.variantTranslations[:0]
	for _, translation := range r.variantTranslations {
		if translation.VariantID != variantID {
			kept = append(kept, translation)
		}
	}
	r.variantTranslations = append(kept, translations...)
	return nil
}

func (r *fakeMenuRepo) DeleteVariant(ctx context.Context, userID, variantID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	variant, ok := r.variants[variantID]
	if !ok {
		return "", ErrVariantNotFound
	}
	menu := r.menus[r.dishes[variant.DishID].MenuID]
	if menu.UserID != userID {
		return "", ErrVariantNotFound
	}
	r.write()
	r.deleteVariantLocked(variantID)
	return menu.Slug, nil
}

func (r *fakeMenuRepo) deleteVariantLocked(variantID string) {
	kept := r.variantTranslations[:0]
	for _, translation := range r.variantTranslations {
		if translation.VariantID != variantID {
			kept = append(kept, translation)
		}
	}
	r.variantTranslations = kept
	delete(r.variants, variantID)
}

func (r *fakeMenuRepo) dishTranslationLanguages(dishID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, translation := range r.dishTranslations {
		if translation.DishID == dishID {
			ids = append(ids, translation.LanguageID)
		}
	}
	sort.Strings(ids)
	return ids
}

func (r *fakeMenuRepo) dishTagValues(dishID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tags []string
	for _, tag := range r.dishTags {
		if tag.DishID == dishID {
			tags = append(tags, string(tag.Tag))
		}
	}
	sort.Strings(tags)
	return tags
}

func (r *fakeMenuRepo) menu(id string) Menu {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.menus[id]
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[string]*MenuView
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]*MenuView)}
}

func (c *fakeCache) Get(key string) (*MenuView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view, ok := c.items[key]
	return view, ok
}

func (c *fakeCache) Set(key string, view *MenuView, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = view
}

func (c *fakeCache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, prefix)
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

type fakeSubscriptions struct {
	active map[string]bool
	err    error
}

func (f fakeSubscriptions) IsActive(ctx context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.active[userID], nil
}

type fakeStorage struct {
	mu      sync.Mutex
	removed []string
	err     error
}

func (f *fakeStorage) Remove(ctx context.Context, objectURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, objectURL)
	return f.err
}
