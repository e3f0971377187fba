package referral

import (
	"context"
	"fmt"
)

// ValidateReferralCode resolves a referral code case-insensitively and
// returns the economics the checkout flow records onto the booking.
func (s *DefaultReferralService) ValidateReferralCode(ctx context.Context, code string) (*CodeInfo, error) {
	ref, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up referral code: %w", err)
	}
	if ref == nil {
		return nil, CodeNotFoundError{Code: code}
	}
	return &CodeInfo{
		CommissionPercent: ref.CommissionPercent,
		DiscountPercent:   ref.DiscountPercent,
		IsFirstTime:       ref.IsFirstTime,
	}, nil
}

// ValidateCoupon checks, in order: existence, the active flag, the lower
// window bound, the upper window bound. Both bounds are inclusive, so a
// coupon redeemed at exactly validTo still succeeds.
func (s *DefaultReferralService) ValidateCoupon(ctx context.Context, code string) (*CouponInfo, error) {
	coupon, err := s.Coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if coupon == nil {
		return nil, CouponNotFoundError{Code: code}
	}
	if !coupon.IsActive {
		return nil, CouponInactiveError{Code: code}
	}
	now := s.now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, CouponNotYetValidError{Code: code}
	}
	if coupon.ValidTo != nil && now.After(*coupon.ValidTo) {
		return nil, CouponExpiredError{Code: code}
	}
	return &CouponInfo{
		DiscountPercent:        coupon.DiscountPercent,
		CanCombineWithReferral: coupon.CanCombineWithReferral,
	}, nil
}

// EffectiveDiscount applies the stacking rule to a referral discount and a
// coupon. When the coupon refuses to combine, the larger single discount
// wins and the caller is told which source was used.
func EffectiveDiscount(referralPercent float64, coupon *CouponInfo) (percent float64, usedReferral, usedCoupon bool) {
	if coupon == nil {
		return referralPercent, referralPercent > 0, false
	}
	if referralPercent <= 0 {
		return coupon.DiscountPercent, false, true
	}
	if coupon.CanCombineWithReferral {
		return referralPercent + coupon.DiscountPercent, true, true
	}
	if coupon.DiscountPercent > referralPercent {
		return coupon.DiscountPercent, false, true
	}
	return referralPercent, true, false
}

// DiscountedPrice applies a percentage discount to a package price.
func DiscountedPrice(price float64, percent float64) float64 {
	if percent <= 0 {
		return price
	}
	if percent >= 100 {
		return 0
	}
	return price * (100 - percent) / 100
}
