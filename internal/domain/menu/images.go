package menu

import "context"

// UpdateMenuImage sets or clears a menu background or logo. Clearing also
// removes the stored object; a failed removal is logged and the cleared
// database field is kept.
func (s *Service) UpdateMenuImage(ctx context.Context, input UpdateMenuImageInput) (*Menu, error) {
	if input.Kind != ImageBackground && input.Kind != ImageLogo {
		return nil, ErrInvalidImageKind
	}

	menu, err := s.ownedMenu(ctx, input.UserID, input.MenuID)
	if err != nil {
		return nil, err
	}

	url := trimOptional(input.URL)
	previous := menu.BackgroundImageURL
	if input.Kind == ImageLogo {
		previous = menu.LogoImageURL
	}

	if err := s.repo.UpdateMenuImage(ctx, menu.ID, input.Kind, url); err != nil {
		return nil, err
	}

	if input.Kind == ImageLogo {
		menu.LogoImageURL = url
	} else {
		menu.BackgroundImageURL = url
	}

	if url == nil && previous != nil {
		s.removeObject(ctx, *previous, "menu_id", menu.ID, "kind", string(input.Kind))
	}

	s.invalidate(menu.Slug)
	return menu, nil
}

func (s *Service) UpdateDishPicture(ctx context.Context, input UpdateDishPictureInput) (*Dish, error) {
	ownership, err := s.ownedDish(ctx, input.UserID, input.DishID)
	if err != nil {
		return nil, err
	}

	dish, err := s.repo.GetDishByID(ctx, ownership.DishID)
	if err != nil {
		return nil, err
	}

	url := trimOptional(input.URL)
	previous := dish.PictureURL

	if err := s.repo.UpdateDishPicture(ctx, dish.ID, url); err != nil {
		return nil, err
	}
	dish.PictureURL = url

	if url == nil && previous != nil {
		s.removeObject(ctx, *previous, "dish_id", dish.ID)
	}

	s.invalidate(ownership.MenuSlug)
	return dish, nil
}

func (s *Service) removeObject(ctx context.Context, objectURL string, args ...any) {
	if err := s.storage.Remove(ctx, objectURL); err != nil {
		attrs := append([]any{"url", objectURL}, args...)
		s.log.BusinessError("menu.images: remove stored object failed", err, attrs...)
	}
}
