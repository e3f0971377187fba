package models

import "time"

// Credential storage versions. Records written before the version tag existed
// may carry a bcrypt hash (detectable by prefix) or legacy plaintext.
const (
	CredentialPlaintext = 0
	CredentialBcrypt    = 1
)

// A creator may edit their commission/discount split once they have referred
// at least this many paid bookings (unless BypassUnlock is set).
const SplitUnlockThreshold = 5

// Referral is a creator's referral identity and current economics.
type Referral struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Code  string `bson:"code" json:"code"` // unique slug, stored lowercase
	Email string `bson:"email" json:"email"`

	Password          string `bson:"password,omitempty" json:"-"`
	CredentialVersion int    `bson:"credential_version,omitempty" json:"-"`

	CommissionPercent    float64 `bson:"commission_percent" json:"commissionPercent"`
	DiscountPercent      float64 `bson:"discount_percent" json:"discountPercent"`
	MaxCommissionPercent float64 `bson:"max_commission_percent" json:"maxCommissionPercent"`

	SuccessfulReferrals int  `bson:"successful_referrals" json:"successfulReferrals"`
	BypassUnlock        bool `bson:"bypass_unlock,omitempty" json:"bypassUnlock,omitempty"`
	IsFirstTime         bool `bson:"is_first_time,omitempty" json:"isFirstTime,omitempty"`

	ResetToken       string    `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry time.Time `bson:"reset_token_expiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SplitUnlocked reports whether the creator may edit their split.
func (r *Referral) SplitUnlocked() bool {
	return r.SuccessfulReferrals >= SplitUnlockThreshold || r.BypassUnlock
}
