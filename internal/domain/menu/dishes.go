package menu

import (
	"context"
	"strings"
	"time"
)

// UpsertDish creates a dish when input.ID is empty and updates it otherwise.
// Updates replace the whole translation and tag sets of the dish.
func (s *Service) UpsertDish(ctx context.Context, input UpsertDishInput) (*DishView, error) {
	if strings.TrimSpace(input.MenuID) == "" {
		return nil, ErrMenuIDRequired
	}

	price, err := ToMinorUnits(input.Price)
	if err != nil {
		return nil, err
	}
	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}
	translations, err := normalizeTranslations(input.Translations)
	if err != nil {
		return nil, err
	}

	menu, err := s.ownedMenu(ctx, input.UserID, input.MenuID)
	if err != nil {
		return nil, err
	}

	categoryID := trimOptional(input.CategoryID)
	if categoryID != nil {
		if !IsValidID(*categoryID) {
			return nil, ErrCategoryNotFound
		}
		ownership, err := s.repo.GetCategoryOwnership(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if ownership.MenuID != menu.ID {
			return nil, ErrCategoryNotFound
		}
	}

	dish := Dish{
		MenuID:        menu.ID,
		CategoryID:    categoryID,
		Price:         price,
		Carbohydrates: input.Carbohydrates,
		Fats:          input.Fats,
		Protein:       input.Protein,
		Calories:      input.Calories,
	}

	var (
		rows     []DishTranslation
		variants []VariantView
	)
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := checkLanguagesExist(ctx, tx, translations); err != nil {
			return err
		}

		if strings.TrimSpace(input.ID) == "" {
			dish.ID = s.newID()
			if err := tx.CreateDish(ctx, &dish); err != nil {
				return err
			}
		} else {
			if !IsValidID(input.ID) {
				return ErrDishNotFound
			}
			existing, err := tx.GetDishByID(ctx, input.ID)
			if err != nil {
				return err
			}
			if existing.MenuID != menu.ID {
				return ErrForbidden
			}
			dish.ID = existing.ID
			dish.PictureURL = existing.PictureURL
			dish.CreatedAt = existing.CreatedAt
			dish.UpdatedAt = time.Now().UTC()
			if err := tx.UpdateDish(ctx, &dish); err != nil {
				return err
			}
			if variants, err = dishVariants(ctx, tx, menu.ID, dish.ID); err != nil {
				return err
			}
		}

		rows = make([]DishTranslation, 0, len(translations))
		for _, translation := range translations {
			rows = append(rows, DishTranslation{
				ID:          s.newID(),
				DishID:      dish.ID,
				LanguageID:  translation.LanguageID,
				Name:        translation.Name,
				Description: translation.Description,
			})
		}
		if err := tx.ReplaceDishTranslations(ctx, dish.ID, rows); err != nil {
			return err
		}

		tagRows := make([]DishTag, 0, len(tags))
		for _, tag := range tags {
			tagRows = append(tagRows, DishTag{DishID: dish.ID, Tag: tag})
		}
		return tx.ReplaceDishTags(ctx, dish.ID, tagRows)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(menu.Slug)
	return &DishView{
		Dish:         dish,
		Translations: rows,
		Tags:         tags,
		Variants:     nonNil(variants),
	}, nil
}

// dishVariants loads the variants already stored for a dish so an update
// response reflects them.
func dishVariants(ctx context.Context, repo Repository, menuID, dishID string) ([]VariantView, error) {
	variants, err := repo.ListVariantsByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	translations, err := repo.ListVariantTranslationsByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}
	return groupVariantsByDish(variants, translations)[dishID], nil
}

func (s *Service) DeleteDish(ctx context.Context, userID, dishID string) error {
	if !IsValidID(dishID) {
		return ErrDishNotFound
	}
	slug, err := s.repo.DeleteDish(ctx, userID, dishID)
	if err != nil {
		return err
	}
	s.invalidate(slug)
	return nil
}

func (s *Service) ownedDish(ctx context.Context, userID, dishID string) (*Ownership, error) {
	if strings.TrimSpace(dishID) == "" {
		return nil, ErrDishIDRequired
	}
	if !IsValidID(dishID) {
		return nil, ErrDishNotFound
	}
	ownership, err := s.repo.GetDishOwnership(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwnership(ownership.OwnerID, userID); err != nil {
		return nil, err
	}
	return ownership, nil
}
