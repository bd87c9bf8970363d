package menu

import (
	"context"
	"errors"
	"strings"
	"time"

	"menu-app-go/pkg/logger"

	"github.com/google/uuid"
)

const (
	DefaultLanguageCode = "en"
	DefaultCacheTTL     = 5 * time.Minute

	menuSlugAttempts = 3
)

type Deps struct {
	Cache         Cache
	CacheTTL      time.Duration
	Subscriptions SubscriptionReader
	Storage       ObjectStorage
	Log           logger.Logger
}

type Service struct {
	repo          Repository
	cache         Cache
	cacheTTL      time.Duration
	subscriptions SubscriptionReader
	storage       ObjectStorage
	log           logger.Logger
	newID         func() string
}

func NewService(repo Repository) *Service {
	return NewServiceWithDeps(repo, Deps{})
}

func NewServiceWithDeps(repo Repository, deps Deps) *Service {
	svc := &Service{
		repo:          repo,
		cache:         deps.Cache,
		cacheTTL:      deps.CacheTTL,
		subscriptions: deps.Subscriptions,
		storage:       deps.Storage,
		log:           deps.Log,
		newID:         uuid.NewString,
	}
	if svc.cache == nil {
		svc.cache = noopCache{}
	}
	if svc.cacheTTL <= 0 {
		svc.cacheTTL = DefaultCacheTTL
	}
	if svc.subscriptions == nil {
		svc.subscriptions = noopSubscriptions{}
	}
	if svc.storage == nil {
		svc.storage = noopStorage{}
	}
	if svc.log == nil {
		svc.log = logger.NewNop()
	}
	return svc
}

// UpsertMenu creates a menu when input.ID is empty and updates it otherwise.
// The slug is regenerated on every call, so callers must not rely on it
// staying stable across updates.
func (s *Service) UpsertMenu(ctx context.Context, input UpsertMenuInput) (*Menu, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.City == "" {
		return nil, ErrCityRequired
	}

	if strings.TrimSpace(input.ID) == "" {
		return s.createMenu(ctx, input)
	}
	return s.updateMenu(ctx, input)
}

func (s *Service) createMenu(ctx context.Context, input UpsertMenuInput) (*Menu, error) {
	var (
		result Menu
		err    error
	)
	for attempt := 0; attempt < menuSlugAttempts; attempt++ {
		err = s.repo.Transaction(ctx, func(tx Repository) error {
			language, err := tx.GetLanguageByISOCode(ctx, DefaultLanguageCode)
			if errors.Is(err, ErrLanguageNotFound) {
				return ErrDefaultLanguageMissing
			}
			if err != nil {
				return err
			}

			slug, err := generateUniqueSlug(ctx, tx, input.Name, input.City, "")
			if err != nil {
				return err
			}

			menu := Menu{
				ID:            s.newID(),
				UserID:        input.UserID,
				Name:          input.Name,
				Address:       input.Address,
				City:          input.City,
				ContactNumber: input.ContactNumber,
				Slug:          slug,
				IsPublished:   false,
			}
			if err := tx.CreateMenu(ctx, &menu); err != nil {
				return err
			}

			link := MenuLanguage{MenuID: menu.ID, LanguageID: language.ID, IsDefault: true}
			if err := tx.AddMenuLanguages(ctx, []MenuLanguage{link}); err != nil {
				return err
			}

			result = menu
			return nil
		})
		if !errors.Is(err, ErrSlugTaken) {
			break
		}
	}
	if errors.Is(err, ErrSlugTaken) {
		return nil, ErrSlugGenerationFailed
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) updateMenu(ctx context.Context, input UpsertMenuInput) (*Menu, error) {
	menu, err := s.ownedMenu(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}
	previousSlug := menu.Slug

	menu.Name = input.Name
	menu.Address = input.Address
	menu.City = input.City
	menu.ContactNumber = input.ContactNumber
	menu.UpdatedAt = time.Now().UTC()

	for attempt := 0; attempt < menuSlugAttempts; attempt++ {
		menu.Slug, err = generateUniqueSlug(ctx, s.repo, input.Name, input.City, previousSlug)
		if err != nil {
			return nil, err
		}
		err = s.repo.UpdateMenuDetails(ctx, menu)
		if !errors.Is(err, ErrSlugTaken) {
			break
		}
	}
	if errors.Is(err, ErrSlugTaken) {
		return nil, ErrSlugGenerationFailed
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(previousSlug)
	return menu, nil
}

func (s *Service) DeleteMenu(ctx context.Context, userID, menuID string) error {
	if !IsValidID(menuID) {
		return ErrMenuNotFound
	}
	slug, err := s.repo.DeleteMenu(ctx, userID, menuID)
	if err != nil {
		return err
	}
	s.invalidate(slug)
	return nil
}

// PublishMenu makes the menu visible on its public slug. The owner must hold
// an active subscription at the time of the call.
func (s *Service) PublishMenu(ctx context.Context, userID, menuID string) (*Menu, error) {
	menu, err := s.ownedMenu(ctx, userID, menuID)
	if err != nil {
		return nil, err
	}

	active, err := s.subscriptions.IsActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrSubscriptionRequired
	}

	if err := s.repo.UpdateMenuPublished(ctx, menu.ID, true); err != nil {
		return nil, err
	}
	menu.IsPublished = true

	s.invalidate(menu.Slug)
	return menu, nil
}

func (s *Service) UnpublishMenu(ctx context.Context, userID, menuID string) (*Menu, error) {
	menu, err := s.ownedMenu(ctx, userID, menuID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMenuPublished(ctx, menu.ID, false); err != nil {
		return nil, err
	}
	menu.IsPublished = false

	s.invalidate(menu.Slug)
	return menu, nil
}

func (s *Service) UpdateMenuSocialLinks(ctx context.Context, userID, menuID string, links SocialLinks) (*Menu, error) {
	menu, err := s.ownedMenu(ctx, userID, menuID)
	if err != nil {
		return nil, err
	}

	links = normalizeSocialLinks(links)
	if err := s.repo.UpdateMenuSocialLinks(ctx, menu.ID, links); err != nil {
		return nil, err
	}

	s.invalidate(menu.Slug)
	return s.repo.GetMenuByID(ctx, menu.ID)
}

func (s *Service) ListLanguages(ctx context.Context) ([]Language, error) {
	return s.repo.ListLanguages(ctx)
}

// SetMenuLanguages replaces the additional languages supported by a menu.
// The default language link created with the menu is always kept.
func (s *Service) SetMenuLanguages(ctx context.Context, userID, menuID string, languageIDs []string) ([]MenuLanguageView, error) {
	menu, err := s.ownedMenu(ctx, userID, menuID)
	if err != nil {
		return nil, err
	}

	languageIDs = normalizeIDs(languageIDs)
	for _, languageID := range languageIDs {
		if !IsValidID(languageID) {
			return nil, ErrLanguageNotFound
		}
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if len(languageIDs) > 0 {
			count, err := tx.CountLanguagesByIDs(ctx, languageIDs)
			if err != nil {
				return err
			}
			if count != int64(len(languageIDs)) {
				return ErrLanguageNotFound
			}
		}

		current, err := tx.ListMenuLanguages(ctx, menu.ID)
		if err != nil {
			return err
		}
		defaults := make(map[string]struct{}, 1)
		for _, language := range current {
			if language.IsDefault {
				defaults[language.LanguageID] = struct{}{}
			}
		}

		if err := tx.DeleteNonDefaultMenuLanguages(ctx, menu.ID); err != nil {
			return err
		}

		links := make([]MenuLanguage, 0, len(languageIDs))
		for _, languageID := range languageIDs {
			if _, ok := defaults[languageID]; ok {
				continue
			}
			links = append(links, MenuLanguage{MenuID: menu.ID, LanguageID: languageID})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.AddMenuLanguages(ctx, links)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(menu.Slug)
	return s.repo.ListMenuLanguages(ctx, menu.ID)
}

func (s *Service) ownedMenu(ctx context.Context, userID, menuID string) (*Menu, error) {
	menuID = strings.TrimSpace(menuID)
	if menuID == "" {
		return nil, ErrMenuIDRequired
	}
	if !IsValidID(menuID) {
		return nil, ErrMenuNotFound
	}
	menu, err := s.repo.GetMenuByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwnership(menu.UserID, userID); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *Service) invalidate(slug string) {
	if slug == "" {
		return
	}
	s.cache.DeletePrefix(cacheKeyPrefix(slug))
}

func normalizeSocialLinks(links SocialLinks) SocialLinks {
	return SocialLinks{
		Facebook:     trimOptional(links.Facebook),
		Instagram:    trimOptional(links.Instagram),
		TikTok:       trimOptional(links.TikTok),
		Website:      trimOptional(links.Website),
		GoogleReview: trimOptional(links.GoogleReview),
	}
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
