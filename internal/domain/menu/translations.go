package menu

import (
	"context"
	"strings"
)

func normalizeTranslations(inputs []TranslationInput) ([]TranslationInput, error) {
	seen := make(map[string]struct{}, len(inputs))
	result := make([]TranslationInput, 0, len(inputs))
	for _, input := range inputs {
		input.LanguageID = strings.TrimSpace(input.LanguageID)
		input.Name = strings.TrimSpace(input.Name)
		input.Description = strings.TrimSpace(input.Description)
		if input.LanguageID == "" || input.Name == "" {
			return nil, ErrInvalidTranslation
		}
		if !IsValidID(input.LanguageID) {
			return nil, ErrLanguageNotFound
		}
		if _, ok := seen[input.LanguageID]; ok {
			return nil, ErrDuplicateTranslation
		}
		seen[input.LanguageID] = struct{}{}
		result = append(result, input)
	}
	return result, nil
}

func translationLanguageIDs(inputs []TranslationInput) []string {
	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.LanguageID)
	}
	return ids
}

func normalizeTags(tags []Tag) ([]Tag, error) {
	seen := make(map[Tag]struct{}, len(tags))
	result := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		tag = Tag(strings.ToLower(strings.TrimSpace(string(tag))))
		if !tag.Valid() {
			return nil, ErrInvalidTag
		}
		if _, ok := seen[tag]; ok {
			return nil, ErrDuplicateTag
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result, nil
}

func checkLanguagesExist(ctx context.Context, repo Repository, inputs []TranslationInput) error {
	if len(inputs) == 0 {
		return nil
	}
	ids := translationLanguageIDs(inputs)
	count, err := repo.CountLanguagesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrLanguageNotFound
	}
	return nil
}
