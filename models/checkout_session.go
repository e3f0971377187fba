package models

import "time"

// CheckoutSession is the transient state cached while a customer completes
// checkout: the hold they were granted plus the discount sources they chose.
// It lives in Redis with the same TTL as the hold itself.
type CheckoutSession struct {
	SessionID    string    `json:"sessionId"`
	HoldID       string    `json:"holdId"`
	SlotDate     string    `json:"slotDate"`
	SlotTime     string    `json:"slotTime"`
	SlotStart    time.Time `json:"slotStart"`
	PackageTitle string    `json:"packageTitle"`

	ReferralCode string `json:"referralCode,omitempty"`
	CouponCode   string `json:"couponCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
