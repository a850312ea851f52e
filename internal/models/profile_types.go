package models

import "time"

// Subscription tiers stored in profiles.subscription_tier
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// Profile defines the model for the 'profiles' table.
// Nullable columns are pointers so they encode as null.
type Profile struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"userId" db:"user_id"`
	Email            string    `json:"email" db:"email"`
	FullName         *string   `json:"fullName,omitempty" db:"full_name"`
	AvatarURL        *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	SubscriptionTier *string   `json:"subscriptionTier" db:"subscription_tier"`
	CreditsRemaining *int      `json:"creditsRemaining" db:"credits_remaining"`
	UploadsThisMonth *int      `json:"uploadsThisMonth" db:"uploads_this_month"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileSummary is the dashboard projection of a profile row.
type ProfileSummary struct {
	SubscriptionTier *string `json:"subscriptionTier" db:"subscription_tier"`
	CreditsRemaining *int    `json:"creditsRemaining" db:"credits_remaining"`
	UploadsThisMonth *int    `json:"uploadsThisMonth" db:"uploads_this_month"`
}

// Tier returns the subscription tier, defaulting to free.
func (p ProfileSummary) Tier() string {
	if p.SubscriptionTier == nil || *p.SubscriptionTier == "" {
		return TierFree
	}
	return *p.SubscriptionTier
}

// IsPremium reports whether the account has unlimited credits.
func (p ProfileSummary) IsPremium() bool {
	return p.Tier() == TierPremium
}

// Credits returns credits_remaining or 0 when null.
func (p ProfileSummary) Credits() int {
	return intOrZero(p.CreditsRemaining)
}

// Uploads returns uploads_this_month or 0 when null.
func (p ProfileSummary) Uploads() int {
	return intOrZero(p.UploadsThisMonth)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
