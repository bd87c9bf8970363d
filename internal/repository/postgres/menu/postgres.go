package menu

import (
	"context"
	"errors"
	"time"

	menudomain "menu-app-go/internal/domain/menu"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	menuColumns    = "id, user_id, name, address, city, contact_number, slug, is_published, background_image_url, logo_image_url, social_links, created_at, updated_at"
	dishColumns    = "dishes.id, dishes.menu_id, dishes.category_id, dishes.price, dishes.carbohydrates, dishes.fats, dishes.protein, dishes.calories, dishes.picture_url, dishes.created_at, dishes.updated_at"
	variantColumns = "variants.id, variants.dish_id, variants.price, variants.created_at"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(menudomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetMenuBySlug(ctx context.Context, slug string) (*menudomain.Menu, error) {
	var menu menudomain.Menu
	if err := r.db.WithContext(ctx).Select(menuColumns).Where("slug = ?", slug).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menudomain.ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *PostgresRepository) GetMenuByID(ctx context.Context, menuID string) (*menudomain.Menu, error) {
	var menu menudomain.Menu
	if err := r.db.WithContext(ctx).Select(menuColumns).Where("id = ?", menuID).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menudomain.ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *PostgresRepository) ListMenusByOwner(ctx context.Context, userID string, offset, limit int) ([]menudomain.MenuSummary, error) {
	type summaryRow struct {
		ID          string    `gorm:"column:id"`
		Name        string    `gorm:"column:name"`
		City        string    `gorm:"column:city"`
		Slug        string    `gorm:"column:slug"`
		IsPublished bool      `gorm:"column:is_published"`
		UpdatedAt   time.Time `gorm:"column:updated_at"`
		DishCount   int64     `gorm:"column:dish_count"`
	}

	var rows []summaryRow
	if err := r.db.WithContext(ctx).
		Table("menus").
		Select("menus.id, menus.name, menus.city, menus.slug, menus.is_published, menus.updated_at, (SELECT COUNT(*) FROM dishes WHERE dishes.menu_id = menus.id) AS dish_count").
		Where("menus.user_id = ?", userID).
		Order("menus.updated_at DESC, menus.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]menudomain.MenuSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, menudomain.MenuSummary{
			ID:          row.ID,
			Name:        row.Name,
			City:        row.City,
			Slug:        row.Slug,
			IsPublished: row.IsPublished,
			DishCount:   row.DishCount,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return items, nil
}

func (r *PostgresRepository) CountMenusByOwner(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&menudomain.Menu{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *menudomain.Menu) error {
	if err := r.db.WithContext(ctx).Create(menu).Error; err != nil {
		if isUniqueViolation(err) {
			return menudomain.ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) UpdateMenuDetails(ctx context.Context, menu *menudomain.Menu) error {
	err := r.db.WithContext(ctx).
		Model(&menudomain.Menu{}).
		Where("id = ?", menu.ID).
		Updates(map[string]interface{}{
			"name":           menu.Name,
			"address":        menu.Address,
			"city":           menu.City,
			"contact_number": menu.ContactNumber,
			"slug":           menu.Slug,
			"updated_at":     menu.UpdatedAt,
		}).Error
	if isUniqueViolation(err) {
		return menudomain.ErrSlugTaken
	}
	return err
}

func (r *PostgresRepository) UpdateMenuPublished(ctx context.Context, menuID string, published bool) error {
	return r.db.WithContext(ctx).
		Model(&menudomain.Menu{}).
		Where("id = ?", menuID).
		Updates(map[string]interface{}{
			"is_published": published,
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) UpdateMenuImage(ctx context.Context, menuID string, kind menudomain.ImageKind, url *string) error {
	column := "background_image_url"
	if kind == menudomain.ImageLogo {
		column = "logo_image_url"
	}
	return r.db.WithContext(ctx).
		Model(&menudomain.Menu{}).
		Where("id = ?", menuID).
		Updates(map[string]interface{}{
			column:       url,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) UpdateMenuSocialLinks(ctx context.Context, menuID string, links menudomain.SocialLinks) error {
	return r.db.WithContext(ctx).
		Model(&menudomain.Menu{}).
		Where("id = ?", menuID).
		Updates(map[string]interface{}{
			"social_links": datatypes.NewJSONType(links),
			"updated_at":   time.Now().UTC(),
		}).Error
}

// DeleteMenu removes the menu and every row hanging off it. The lookup is
// scoped by owner, so menus of other users are reported as not found.
func (r *PostgresRepository) DeleteMenu(ctx context.Context, userID, menuID string) (string, error) {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu menudomain.Menu
		if err := tx.Select("id, slug").Where("id = ? AND user_id = ?", menuID, userID).First(&menu).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return menudomain.ErrMenuNotFound
			}
			return err
		}

		dishIDs := tx.Model(&menudomain.Dish{}).Select("id").Where("menu_id = ?", menuID)
		if err := deleteDishChildren(tx, dishIDs); err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&menudomain.Dish{}).Error; err != nil {
			return err
		}

		categoryIDs := tx.Model(&menudomain.Category{}).Select("id").Where("menu_id = ?", menuID)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&menudomain.CategoryTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&menudomain.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&menudomain.MenuLanguage{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", menuID, userID).Delete(&menudomain.Menu{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return menudomain.ErrMenuNotFound
		}

		slug = menu.Slug
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

func (r *PostgresRepository) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&menudomain.Menu{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListLanguages(ctx context.Context) ([]menudomain.Language, error) {
	var languages []menudomain.Language
	if err := r.db.WithContext(ctx).
		Select("id, iso_code, name, flag_url").
		Order("iso_code asc").
		Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *PostgresRepository) GetLanguageByISOCode(ctx context.Context, isoCode string) (*menudomain.Language, error) {
	var language menudomain.Language
	if err := r.db.WithContext(ctx).
		Select("id, iso_code, name, flag_url").
		Where("iso_code = ?", isoCode).
		First(&language).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menudomain.ErrLanguageNotFound
		}
		return nil, err
	}
	return &language, nil
}

func (r *PostgresRepository) CountLanguagesByIDs(ctx context.Context, languageIDs []string) (int64, error) {
	if len(languageIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&menudomain.Language{}).
		Where("id IN ?", languageIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListMenuLanguages(ctx context.Context, menuID string) ([]menudomain.MenuLanguageView, error) {
	type languageRow struct {
		LanguageID string `gorm:"column:language_id"`
		ISOCode    string `gorm:"column:iso_code"`
		Name       string `gorm:"column:name"`
		FlagURL    string `gorm:"column:flag_url"`
		IsDefault  bool   `gorm:"column:is_default"`
	}

	var rows []languageRow
	if err := r.db.WithContext(ctx).
		Table("menu_languages").
		Select("menu_languages.language_id, languages.iso_code, languages.name, languages.flag_url, menu_languages.is_default").
		Joins("JOIN languages ON languages.id = menu_languages.language_id").
		Where("menu_languages.menu_id = ?", menuID).
		Order("menu_languages.is_default DESC, languages.iso_code ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	languages := make([]menudomain.MenuLanguageView, 0, len(rows))
	for _, row := range rows {
		languages = append(languages, menudomain.MenuLanguageView{
			LanguageID: row.LanguageID,
			ISOCode:    row.ISOCode,
			Name:       row.Name,
			FlagURL:    row.FlagURL,
			IsDefault:  row.IsDefault,
		})
	}
	return languages, nil
}

func (r *PostgresRepository) AddMenuLanguages(ctx context.Context, links []menudomain.MenuLanguage) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

func (r *PostgresRepository) DeleteNonDefaultMenuLanguages(ctx context.Context, menuID string) error {
	return r.db.WithContext(ctx).
		Where("menu_id = ? AND is_default = ?", menuID, false).
		Delete(&menudomain.MenuLanguage{}).Error
}

func (r *PostgresRepository) GetCategoryOwnership(ctx context.Context, categoryID string) (*menudomain.Ownership, error) {
	var row ownershipRow
	if err := r.db.WithContext(ctx).
		Table("categories").
		Select("menus.id AS menu_id, menus.slug AS menu_slug, menus.user_id AS owner_id").
		Joins("JOIN menus ON menus.id = categories.menu_id").
		Where("categories.id = ?", categoryID).
		Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.MenuID == "" {
		return nil, menudomain.ErrCategoryNotFound
	}
	return row.toDomain(), nil
}

func (r *PostgresRepository) ListCategoriesByMenu(ctx context.Context, menuID string) ([]menudomain.Category, error) {
	var categories []menudomain.Category
	if err := r.db.WithContext(ctx).
		Select("id, menu_id, created_at").
		Where("menu_id = ?", menuID).
		Order("created_at ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) ListCategoryTranslationsByMenu(ctx context.Context, menuID string) ([]menudomain.CategoryTranslation, error) {
	var translations []menudomain.CategoryTranslation
	if err := r.db.WithContext(ctx).
		Model(&menudomain.CategoryTranslation{}).
		Select("category_translations.id, category_translations.category_id, category_translations.language_id, category_translations.name").
		Joins("JOIN categories ON categories.id = category_translations.category_id").
		Where("categories.menu_id = ?", menuID).
		Find(&translations).Error; err != nil {
		return nil, err
	}
	return translations, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *menudomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) ReplaceCategoryTranslations(ctx context.Context, categoryID string, translations []menudomain.CategoryTranslation) error {
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&menudomain.CategoryTranslation{}).Error; err != nil {
		return err
	}
	if len(translations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&translations).Error
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, userID, categoryID string) (string, error) {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownership, err := ownedBy(tx, "categories", "JOIN menus ON menus.id = categories.menu_id", "categories.id = ?", categoryID, userID)
		if err != nil {
			return err
		}
		if ownership == nil {
			return menudomain.ErrCategoryNotFound
		}

		if err := tx.Model(&menudomain.Dish{}).Where("category_id = ?", categoryID).Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", categoryID).Delete(&menudomain.CategoryTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", categoryID).Delete(&menudomain.Category{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return menudomain.ErrCategoryNotFound
		}

		slug = ownership.MenuSlug
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

func (r *PostgresRepository) GetDishByID(ctx context.Context, dishID string) (*menudomain.Dish, error) {
	var dish menudomain.Dish
	if err := r.db.WithContext(ctx).Select(dishColumns).Where("dishes.id = ?", dishID).First(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menudomain.ErrDishNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) GetDishOwnership(ctx context.Context, dishID string) (*menudomain.Ownership, error) {
	var row ownershipRow
	if err := r.db.WithContext(ctx).
		Table("dishes").
		Select("dishes.id AS dish_id, menus.id AS menu_id, menus.slug AS menu_slug, menus.user_id AS owner_id").
		Joins("JOIN menus ON menus.id = dishes.menu_id").
		Where("dishes.id = ?", dishID).
		Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.MenuID == "" {
		return nil, menudomain.ErrDishNotFound
	}
	return row.toDomain(), nil
}

func (r *PostgresRepository) ListDishesByMenu(ctx context.Context, menuID string) ([]menudomain.Dish, error) {
	var dishes []menudomain.Dish
	if err := r.db.WithContext(ctx).
		Select(dishColumns).
		Where("dishes.menu_id = ?", menuID).
		Order("dishes.created_at ASC, dishes.id ASC").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *PostgresRepository) ListDishTranslationsByMenu(ctx context.Context, menuID string) ([]menudomain.DishTranslation, error) {
	var translations []menudomain.DishTranslation
	if err := r.db.WithContext(ctx).
		Model(&menudomain.DishTranslation{}).
		Select("dish_translations.id, dish_translations.dish_id, dish_translations.language_id, dish_translations.name, dish_translations.description").
		Joins("JOIN dishes ON dishes.id = dish_translations.dish_id").
		Where("dishes.menu_id = ?", menuID).
		Find(&translations).Error; err != nil {
		return nil, err
	}
	return translations, nil
}

func (r *PostgresRepository) ListDishTagsByMenu(ctx context.Context, menuID string) ([]menudomain.DishTag, error) {
	var tags []menudomain.DishTag
	if err := r.db.WithContext(ctx).
		Model(&menudomain.DishTag{}).
		Select("dish_tags.dish_id, dish_tags.tag").
		Joins("JOIN dishes ON dishes.id = dish_tags.dish_id").
		Where("dishes.menu_id = ?", menuID).
		Order("dish_tags.tag ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *menudomain.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *menudomain.Dish) error {
	return r.db.WithContext(ctx).
		Model(&menudomain.Dish{}).
		Where("id = ? AND menu_id = ?", dish.ID, dish.MenuID).
		Updates(map[string]interface{}{
			"category_id":   dish.CategoryID,
			"price":         dish.Price,
			"carbohydrates": dish.Carbohydrates,
			"fats":          dish.Fats,
			"protein":       dish.Protein,
			"calories":      dish.Calories,
			"updated_at":    dish.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) UpdateDishPicture(ctx context.Context, dishID string, url *string) error {
	return r.db.WithContext(ctx).
		Model(&menudomain.Dish{}).
		Where("id = ?", dishID).
		Updates(map[string]interface{}{
			"picture_url": url,
			"updated_at":  time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) ReplaceDishTranslations(ctx context.Context, dishID string, translations []menudomain.DishTranslation) error {
	if err := r.db.WithContext(ctx).Where("dish_id = ?", dishID).Delete(&menudomain.DishTranslation{}).Error; err != nil {
		return err
	}
	if len(translations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&translations).Error
}

func (r *PostgresRepository) ReplaceDishTags(ctx context.Context, dishID string, tags []menudomain.DishTag) error {
	if err := r.db.WithContext(ctx).Where("dish_id = ?", dishID).Delete(&menudomain.DishTag{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tags).Error
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, userID, dishID string) (string, error) {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownership, err := ownedBy(tx, "dishes", "JOIN menus ON menus.id = dishes.menu_id", "dishes.id = ?", dishID, userID)
		if err != nil {
			return err
		}
		if ownership == nil {
			return menudomain.ErrDishNotFound
		}

		dishIDs := tx.Model(&menudomain.Dish{}).Select("id").Where("id = ?", dishID)
		if err := deleteDishChildren(tx, dishIDs); err != nil {
			return err
		}
		result := tx.Where("id = ?", dishID).Delete(&menudomain.Dish{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return menudomain.ErrDishNotFound
		}

		slug = ownership.MenuSlug
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

func (r *PostgresRepository) GetVariantOwnership(ctx context.Context, variantID string) (*menudomain.Ownership, error) {
	var row ownershipRow
	if err := r.db.WithContext(ctx).
		Table("variants").
		Select("variants.dish_id AS dish_id, menus.id AS menu_id, menus.slug AS menu_slug, menus.user_id AS owner_id").
		Joins("JOIN dishes ON dishes.id = variants.dish_id").
		Joins("JOIN menus ON menus.id = dishes.menu_id").
		Where("variants.id = ?", variantID).
		Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.MenuID == "" {
		return nil, menudomain.ErrVariantNotFound
	}
	return row.toDomain(), nil
}

func (r *PostgresRepository) ListVariantsByMenu(ctx context.Context, menuID string) ([]menudomain.Variant, error) {
	var variants []menudomain.Variant
	if err := r.db.WithContext(ctx).
		Model(&menudomain.Variant{}).
		Select(variantColumns).
		Joins("JOIN dishes ON dishes.id = variants.dish_id").
		Where("dishes.menu_id = ?", menuID).
		Order("variants.created_at ASC, variants.id ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PostgresRepository) ListVariantTranslationsByMenu(ctx context.Context, menuID string) ([]menudomain.VariantTranslation, error) {
	var translations []menudomain.VariantTranslation
	if err := r.db.WithContext(ctx).
		Model(&menudomain.VariantTranslation{}).
		Select("variant_translations.id, variant_translations.variant_id, variant_translations.language_id, variant_translations.name, variant_translations.description").
		Joins("JOIN variants ON variants.id = variant_translations.variant_id").
		Joins("JOIN dishes ON dishes.id = variants.dish_id").
		Where("dishes.menu_id = ?", menuID).
		Find(&translations).Error; err != nil {
		return nil, err
	}
	return translations, nil
}

func (r *PostgresRepository) CreateVariant(ctx context.Context, variant *menudomain.Variant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *PostgresRepository) UpdateVariant(ctx context.Context, variant *menudomain.Variant) error {
	return r.db.WithContext(ctx).
		Model(&menudomain.Variant{}).
		Where("id = ? AND dish_id = ?", variant.ID, variant.DishID).
		Update("price", variant.Price).Error
}

func (r *PostgresRepository) ReplaceVariantTranslations(ctx context.Context, variantID string, translations []menudomain.VariantTranslation) error {
	if err := r.db.WithContext(ctx).Where("variant_id = ?", variantID).Delete(&menudomain.VariantTranslation{}).Error; err != nil {
		return err
	}
	if len(translations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&translations).Error
}

func (r *PostgresRepository) DeleteVariant(ctx context.Context, userID, variantID string) (string, error) {
	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownership, err := ownedBy(tx, "variants", "JOIN dishes ON dishes.id = variants.dish_id JOIN menus ON menus.id = dishes.menu_id", "variants.id = ?", variantID, userID)
		if err != nil {
			return err
		}
		if ownership == nil {
			return menudomain.ErrVariantNotFound
		}

		if err := tx.Where("variant_id = ?", variantID).Delete(&menudomain.VariantTranslation{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", variantID).Delete(&menudomain.Variant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return menudomain.ErrVariantNotFound
		}

		slug = ownership.MenuSlug
		return nil
	})
	if err != nil {
		return "", err
	}
	return slug, nil
}

type ownershipRow struct {
	DishID   string `gorm:"column:dish_id"`
	MenuID   string `gorm:"column:menu_id"`
	MenuSlug string `gorm:"column:menu_slug"`
	OwnerID  string `gorm:"column:owner_id"`
}

func (r ownershipRow) toDomain() *menudomain.Ownership {
	return &menudomain.Ownership{
		MenuID:   r.MenuID,
		MenuSlug: r.MenuSlug,
		OwnerID:  r.OwnerID,
		DishID:   r.DishID,
	}
}

// ownedBy resolves the root menu of a row only when userID owns it; nil means
// the row is missing or belongs to someone else.
func ownedBy(tx *gorm.DB, table, joins, where string, id, userID string) (*menudomain.Ownership, error) {
	var row ownershipRow
	if err := tx.Table(table).
		Select("menus.id AS menu_id, menus.slug AS menu_slug, menus.user_id AS owner_id").
		Joins(joins).
		Where(where, id).
		Where("menus.user_id = ?", userID).
		Limit(1).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.MenuID == "" {
		return nil, nil
	}
	return row.toDomain(), nil
}

func deleteDishChildren(tx *gorm.DB, dishIDs *gorm.DB) error {
	variantIDs := tx.Model(&menudomain.Variant{}).Select("id").Where("dish_id IN (?)", dishIDs)
	if err := tx.Where("variant_id IN (?)", variantIDs).Delete(&menudomain.VariantTranslation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("dish_id IN (?)", dishIDs).Delete(&menudomain.Variant{}).Error; err != nil {
		return err
	}
	if err := tx.Where("dish_id IN (?)", dishIDs).Delete(&menudomain.DishTranslation{}).Error; err != nil {
		return err
	}
	return tx.Where("dish_id IN (?)", dishIDs).Delete(&menudomain.DishTag{}).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
