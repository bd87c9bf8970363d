package subscription

import "time"

const (
	StatusActive    = "active"
	StatusTrialing  = "trialing"
	StatusPastDue   = "past_due"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
	StatusUnpaid    = "unpaid"
)

// Subscription mirrors the row maintained by the payment provider webhook.
type Subscription struct {
	UserID                 string     `gorm:"type:uuid;primaryKey"`
	Status                 string     `gorm:"type:varchar(32);not null"`
	ProviderSubscriptionID *string    `gorm:"type:text"`
	RenewsAt               *time.Time `gorm:"column:renews_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }
