package subscription

import (
	"context"
	"errors"
	"strings"
)

var activeStatuses = map[string]struct{}{
	StatusActive:   {},
	StatusTrialing: {},
}

func IsActiveStatus(status string) bool {
	_, ok := activeStatuses[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Status(ctx context.Context, userID string) (string, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return sub.Status, nil
}

// IsActive reports whether userID may publish menus. Users without a
// subscription row are treated as inactive.
func (s *Service) IsActive(ctx context.Context, userID string) (bool, error) {
	status, err := s.Status(ctx, userID)
	if errors.Is(err, ErrSubscriptionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return IsActiveStatus(status), nil
}
