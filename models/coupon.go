package models

import "time"

// Coupon is a promotional code independent of the referral program.
// The code is matched case-insensitively and stored lowercase.
type Coupon struct {
	Code            string     `bson:"code" json:"code"`
	DiscountPercent float64    `bson:"discount_percent" json:"discountPercent"`
	IsActive        bool       `bson:"is_active" json:"isActive"`
	ValidFrom       *time.Time `bson:"valid_from,omitempty" json:"validFrom,omitempty"`
	ValidTo         *time.Time `bson:"valid_to,omitempty" json:"validTo,omitempty"`

	// CanCombineWithReferral permits stacking this coupon on top of a
	// referral discount. When false the customer must pick one.
	CanCombineWithReferral bool `bson:"can_combine_with_referral" json:"canCombineWithReferral"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
