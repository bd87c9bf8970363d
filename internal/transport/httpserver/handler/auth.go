package handler

import (
	"errors"
	"net/http"

	subscriptiondomain "menu-app-go/internal/domain/subscription"
)

type authMeResponse struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	SubscriptionStatus string `json:"subscription_status"`
	CanPublish         bool   `json:"can_publish"`
}

// AuthMe returns the caller as resolved by the auth middleware together with
// the subscription state that gates publishing.
func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp := authMeResponse{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		SubscriptionStatus: "none",
	}

	if h.subscriptions != nil {
		status, err := h.subscriptions.Status(r.Context(), user.ID)
		switch {
		case errors.Is(err, subscriptiondomain.ErrSubscriptionNotFound):
		case err != nil:
			h.log.InternalError("auth.me: subscription lookup failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		default:
			resp.SubscriptionStatus = status
			resp.CanPublish = subscriptiondomain.IsActiveStatus(status)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
