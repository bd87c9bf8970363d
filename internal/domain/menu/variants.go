package menu

import (
	"context"
	"strings"
)

func (s *Service) UpsertVariant(ctx context.Context, input UpsertVariantInput) (*VariantView, error) {
	translations, err := normalizeTranslations(input.Translations)
	if err != nil {
		return nil, err
	}

	var price *int64
	if input.Price != nil {
		minor, err := ToMinorUnits(*input.Price)
		if err != nil {
			return nil, err
		}
		price = &minor
	}

	isNew := strings.TrimSpace(input.ID) == ""

	var ownership *Ownership
	if isNew {
		ownership, err = s.ownedDish(ctx, input.UserID, input.DishID)
		if err != nil {
			return nil, err
		}
	} else {
		if !IsValidID(input.ID) {
			return nil, ErrVariantNotFound
		}
		ownership, err = s.repo.GetVariantOwnership(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		if err := CheckOwnership(ownership.OwnerID, input.UserID); err != nil {
			return nil, err
		}
		if input.DishID != "" && ownership.DishID != input.DishID {
			return nil, ErrForbidden
		}
	}

	variant := Variant{ID: input.ID, DishID: ownership.DishID, Price: price}
	if isNew {
		variant.ID = s.newID()
	}

	rows := make([]VariantTranslation, 0, len(translations))
	for _, translation := range translations {
		rows = append(rows, VariantTranslation{
			ID:          s.newID(),
			VariantID:   variant.ID,
			LanguageID:  translation.LanguageID,
			Name:        translation.Name,
			Description: translation.Description,
		})
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := checkLanguagesExist(ctx, tx, translations); err != nil {
			return err
		}
		if isNew {
			if err := tx.CreateVariant(ctx, &variant); err != nil {
				return err
			}
		} else if err := tx.UpdateVariant(ctx, &variant); err != nil {
			return err
		}
		return tx.ReplaceVariantTranslations(ctx, variant.ID, rows)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ownership.MenuSlug)
	return &VariantView{Variant: variant, Translations: rows}, nil
}

func (s *Service) DeleteVariant(ctx context.Context, userID, variantID string) error {
	if !IsValidID(variantID) {
		return ErrVariantNotFound
	}
	slug, err := s.repo.DeleteVariant(ctx, userID, variantID)
	if err != nil {
		return err
	}
	s.invalidate(slug)
	return nil
}
