package referralRepo

import (
	"context"
	"time"

	"bookday/models"
)

// ReferralRepository provides data access to referral creator documents.
type ReferralRepository interface {
	Create(ctx context.Context, referral *models.Referral) error
	GetByID(ctx context.Context, id string) (*models.Referral, error)
	// GetByCode looks up a referral by its code, case-insensitively.
	GetByCode(ctx context.Context, code string) (*models.Referral, error)
	GetByEmail(ctx context.Context, email string) (*models.Referral, error)
	// GetByResetToken returns the referral holding the token with an expiry
	// after now, or nil when the token is unknown or stale.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.Referral, error)
	// UpdateFields applies a partial patch ($set) to the referral document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// UnsetFields removes the named fields ($unset) from the referral document.
	UnsetFields(ctx context.Context, id string, fields ...string) error
	// IncrementSuccessfulReferrals bumps the paid-referral counter by one.
	IncrementSuccessfulReferrals(ctx context.Context, id string) error
}
