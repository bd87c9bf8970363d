package menu

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Tag string

const (
	TagKeto        Tag = "keto"
	TagVegan       Tag = "vegan"
	TagVegetarian  Tag = "vegetarian"
	TagLowCarb     Tag = "low_carb"
	TagSugarFree   Tag = "sugar_free"
	TagLowFat      Tag = "low_fat"
	TagHighProtein Tag = "high_protein"
	TagHighFiber   Tag = "high_fiber"
	TagOrganic     Tag = "organic"
	TagGlutenFree  Tag = "gluten_free"
	TagLactoseFree Tag = "lactose_free"
)

var knownTags = map[Tag]struct{}{
	TagKeto:        {},
	TagVegan:       {},
	TagVegetarian:  {},
	TagLowCarb:     {},
	TagSugarFree:   {},
	TagLowFat:      {},
	TagHighProtein: {},
	TagHighFiber:   {},
	TagOrganic:     {},
	TagGlutenFree:  {},
	TagLactoseFree: {},
}

func (t Tag) Valid() bool {
	_, ok := knownTags[t]
	return ok
}

type ImageKind string

const (
	ImageBackground ImageKind = "background"
	ImageLogo       ImageKind = "logo"
)

type SocialLinks struct {
	Facebook     *string `json:"facebook,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	TikTok       *string `json:"tiktok,omitempty"`
	Website      *string `json:"website,omitempty"`
	GoogleReview *string `json:"google_review,omitempty"`
}

type Menu struct {
	ID                 string                          `gorm:"type:uuid;primaryKey"`
	UserID             string                          `gorm:"type:uuid;not null;index"`
	Name               string                          `gorm:"not null"`
	Address            string                          `gorm:"not null"`
	City               string                          `gorm:"not null"`
	ContactNumber      string                          `gorm:"not null"`
	Slug               string                          `gorm:"not null;uniqueIndex"`
	IsPublished        bool                            `gorm:"not null;default:false"`
	BackgroundImageURL *string                         `gorm:"type:text"`
	LogoImageURL       *string                         `gorm:"type:text"`
	SocialLinks        datatypes.JSONType[SocialLinks] `gorm:"type:jsonb"`
	CreatedAt          time.Time                       `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                       `gorm:"autoUpdateTime"`
}

func (Menu) TableName() string { return "menus" }

type Language struct {
	ID      string `gorm:"type:uuid;primaryKey"`
	ISOCode string `gorm:"column:iso_code;size:8;not null;uniqueIndex"`
	Name    string `gorm:"not null"`
	FlagURL string `gorm:"type:text;not null"`
}

func (Language) TableName() string { return "languages" }

type MenuLanguage struct {
	MenuID     string `gorm:"type:uuid;primaryKey"`
	LanguageID string `gorm:"type:uuid;primaryKey"`
	IsDefault  bool   `gorm:"not null;default:false"`
}

func (MenuLanguage) TableName() string { return "menu_languages" }

type Category struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	MenuID    string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string { return "categories" }

type CategoryTranslation struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	CategoryID string `gorm:"type:uuid;not null;index"`
	LanguageID string `gorm:"type:uuid;not null"`
	Name       string `gorm:"not null"`
}

func (CategoryTranslation) TableName() string { return "category_translations" }

type Dish struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	MenuID        string    `gorm:"type:uuid;not null;index"`
	CategoryID    *string   `gorm:"type:uuid;index"`
	Price         int64     `gorm:"not null"`
	Carbohydrates *int      `gorm:"column:carbohydrates"`
	Fats          *int      `gorm:"column:fats"`
	Protein       *int      `gorm:"column:protein"`
	Calories      *int      `gorm:"column:calories"`
	PictureURL    *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Dish) TableName() string { return "dishes" }

type DishTranslation struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	DishID      string `gorm:"type:uuid;not null;index"`
	LanguageID  string `gorm:"type:uuid;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`
}

func (DishTranslation) TableName() string { return "dish_translations" }

type DishTag struct {
	DishID string `gorm:"type:uuid;primaryKey"`
	Tag    Tag    `gorm:"type:varchar(32);primaryKey"`
}

func (DishTag) TableName() string { return "dish_tags" }

type Variant struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	DishID    string    `gorm:"type:uuid;not null;index"`
	Price     *int64    `gorm:"column:price"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Variant) TableName() string { return "variants" }

type VariantTranslation struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	VariantID   string `gorm:"type:uuid;not null;index"`
	LanguageID  string `gorm:"type:uuid;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`
}

func (VariantTranslation) TableName() string { return "variant_translations" }

// MenuView is the denormalized read model served to menu visitors.
// Cached instances are shared between requests and must not be mutated.
type MenuView struct {
	Menu       Menu
	Dishes     []DishView
	Categories []CategoryView
	Languages  []MenuLanguageView
}

type DishView struct {
	Dish
	Translations []DishTranslation
	Tags         []Tag
	Variants     []VariantView
}

type VariantView struct {
	Variant
	Translations []VariantTranslation
}

type CategoryView struct {
	Category
	Translations []CategoryTranslation
}

type MenuLanguageView struct {
	LanguageID string
	ISOCode    string
	Name       string
	FlagURL    string
	IsDefault  bool
}

type MenuSummary struct {
	ID          string
	Name        string
	City        string
	Slug        string
	IsPublished bool
	DishCount   int64
	UpdatedAt   time.Time
}

type MenuPage struct {
	Items      []MenuSummary
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// Ownership is the resolved chain from a leaf entity up to its root menu.
type Ownership struct {
	MenuID   string
	MenuSlug string
	OwnerID  string
	DishID   string
}

type TranslationInput struct {
	LanguageID  string
	Name        string
	Description string
}

type UpsertMenuInput struct {
	ID            string
	UserID        string
	Name          string
	Address       string
	City          string
	ContactNumber string
}

type UpsertCategoryInput struct {
	ID           string
	MenuID       string
	UserID       string
	Translations []TranslationInput
}

type UpsertDishInput struct {
	ID            string
	MenuID        string
	UserID        string
	CategoryID    *string
	Price         decimal.Decimal
	Carbohydrates *int
	Fats          *int
	Protein       *int
	Calories      *int
	Tags          []Tag
	Translations  []TranslationInput
}

type UpsertVariantInput struct {
	ID           string
	DishID       string
	UserID       string
	Price        *decimal.Decimal
	Translations []TranslationInput
}

type UpdateMenuImageInput struct {
	UserID string
	MenuID string
	Kind   ImageKind
	URL    *string
}

type UpdateDishPictureInput struct {
	UserID string
	DishID string
	URL    *string
}
