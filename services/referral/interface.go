package referral

import (
	"context"
	"time"

	couponRepo "bookday/database/repository/coupon"
	referralRepo "bookday/database/repository/referral"
	"bookday/services/tasks"
)

// CodeInfo is the public view of a referral code returned to the checkout flow.
type CodeInfo struct {
	CommissionPercent float64 `json:"commissionPercent"`
	DiscountPercent   float64 `json:"discountPercent"`
	IsFirstTime       bool    `json:"isFirstTime"`
}

// CouponInfo is the public view of a usable coupon.
type CouponInfo struct {
	DiscountPercent        float64 `json:"discountPercent"`
	CanCombineWithReferral bool    `json:"canCombineWithReferral"`
}

// SplitStatus reports the outcome of a split update together with the
// advisory unlock state the front-end gates its edit UI on.
type SplitStatus struct {
	CommissionPercent    float64 `json:"commissionPercent"`
	DiscountPercent      float64 `json:"discountPercent"`
	MaxCommissionPercent float64 `json:"maxCommissionPercent"`
	SuccessfulReferrals  int     `json:"successfulReferrals"`
	Unlocked             bool    `json:"unlocked"`
	IsFirstTime          bool    `json:"isFirstTime"`
}

// AuthResult is returned by a successful password verification.
type AuthResult struct {
	ReferralID string `json:"referralId"`
	Name       string `json:"name"`
}

// ReferralService validates referral codes and coupons, enforces the
// discount-stacking and commission-cap rules, and manages creator credentials.
type ReferralService interface {
	// ValidateReferralCode resolves a code case-insensitively.
	ValidateReferralCode(ctx context.Context, code string) (*CodeInfo, error)
	// ValidateCoupon checks existence, the active flag, then the validity
	// window. Both window bounds are inclusive.
	ValidateCoupon(ctx context.Context, code string) (*CouponInfo, error)
	// UpdateSplit changes a creator's commission/discount split. The write is
	// rejected only when the sum exceeds the creator's cap; the unlock
	// condition is surfaced in the returned SplitStatus, not enforced here.
	UpdateSplit(ctx context.Context, referralID string, commissionPercent, discountPercent float64) (*SplitStatus, error)
	// GetSplitStatus returns the creator's current economics and unlock state.
	GetSplitStatus(ctx context.Context, referralID string) (*SplitStatus, error)

	// VerifyPassword checks a creator's password by code, transparently
	// upgrading legacy plaintext credentials to bcrypt on success.
	VerifyPassword(ctx context.Context, code, password string) (*AuthResult, error)
	// SetPassword hashes and stores a new password for the creator.
	SetPassword(ctx context.Context, referralID, plaintext string) error
	// RequestReset issues a password-reset token and mails it out-of-band.
	// Always reports success so callers cannot probe for registered emails.
	RequestReset(ctx context.Context, email string) error
	// CompleteReset consumes an unexpired token, stores the new password and
	// clears the token fields.
	CompleteReset(ctx context.Context, token, newPassword string) error
}

// DefaultReferralService is the production ReferralService.
type DefaultReferralService struct {
	Repo    referralRepo.ReferralRepository
	Coupons couponRepo.CouponRepository
	Mailer  tasks.Mailer
	// Now is the clock; tests override it. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultReferralService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
