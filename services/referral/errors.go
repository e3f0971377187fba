package referral

import "fmt"

// CodeNotFoundError signals an unknown referral code.
type CodeNotFoundError struct {
	Code string
}

func (e CodeNotFoundError) Error() string {
	return fmt.Sprintf("referral code %q not found", e.Code)
}

// ReferralNotFoundError signals an unknown referral id.
type ReferralNotFoundError struct {
	ReferralID string
}

func (e ReferralNotFoundError) Error() string {
	return fmt.Sprintf("referral %s not found", e.ReferralID)
}

// CouponNotFoundError signals an unknown coupon code.
type CouponNotFoundError struct {
	Code string
}

func (e CouponNotFoundError) Error() string {
	return fmt.Sprintf("coupon %q not found", e.Code)
}

// CouponInactiveError signals a coupon that has been switched off.
type CouponInactiveError struct {
	Code string
}

func (e CouponInactiveError) Error() string {
	return fmt.Sprintf("coupon %q is not active", e.Code)
}

// CouponNotYetValidError signals a coupon used before its window opens.
type CouponNotYetValidError struct {
	Code string
}

func (e CouponNotYetValidError) Error() string {
	return fmt.Sprintf("coupon %q is not valid yet", e.Code)
}

// CouponExpiredError signals a coupon used after its window closed.
type CouponExpiredError struct {
	Code string
}

func (e CouponExpiredError) Error() string {
	return fmt.Sprintf("coupon %q has expired", e.Code)
}

// ExceedsMaxError signals a split whose sum breaks the creator's cap.
type ExceedsMaxError struct {
	Requested float64
	Max       float64
}

func (e ExceedsMaxError) Error() string {
	return fmt.Sprintf("commission plus discount %.1f%% exceeds the maximum of %.1f%%", e.Requested, e.Max)
}

// WrongPasswordError signals a failed credential check.
type WrongPasswordError struct{}

func (e WrongPasswordError) Error() string {
	return "invalid code or password"
}

// InvalidResetTokenError signals an unknown or expired reset token.
type InvalidResetTokenError struct{}

func (e InvalidResetTokenError) Error() string {
	return "reset token is invalid or has expired"
}
