package subscription

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Subscription, error)
}
