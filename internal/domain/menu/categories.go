package menu

import (
	"context"
	"strings"
)

func (s *Service) UpsertCategory(ctx context.Context, input UpsertCategoryInput) (*CategoryView, error) {
	translations, err := normalizeTranslations(input.Translations)
	if err != nil {
		return nil, err
	}

	var (
		category Category
		menuSlug string
	)
	if strings.TrimSpace(input.ID) == "" {
		menu, err := s.ownedMenu(ctx, input.UserID, input.MenuID)
		if err != nil {
			return nil, err
		}
		category = Category{ID: s.newID(), MenuID: menu.ID}
		menuSlug = menu.Slug
	} else {
		if !IsValidID(input.ID) {
			return nil, ErrCategoryNotFound
		}
		ownership, err := s.repo.GetCategoryOwnership(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		if err := CheckOwnership(ownership.OwnerID, input.UserID); err != nil {
			return nil, err
		}
		if input.MenuID != "" && ownership.MenuID != input.MenuID {
			return nil, ErrForbidden
		}
		category = Category{ID: input.ID, MenuID: ownership.MenuID}
		menuSlug = ownership.MenuSlug
	}

	rows := make([]CategoryTranslation, 0, len(translations))
	for _, translation := range translations {
		rows = append(rows, CategoryTranslation{
			ID:         s.newID(),
			CategoryID: category.ID,
			LanguageID: translation.LanguageID,
			Name:       translation.Name,
		})
	}

	isNew := strings.TrimSpace(input.ID) == ""
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := checkLanguagesExist(ctx, tx, translations); err != nil {
			return err
		}
		if isNew {
			if err := tx.CreateCategory(ctx, &category); err != nil {
				return err
			}
		}
		return tx.ReplaceCategoryTranslations(ctx, category.ID, rows)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(menuSlug)
	return &CategoryView{Category: category, Translations: rows}, nil
}

func (s *Service) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if !IsValidID(categoryID) {
		return ErrCategoryNotFound
	}
	slug, err := s.repo.DeleteCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	s.invalidate(slug)
	return nil
}
