package models

import "time"

// Payment statuses a booking moves through. The paid statuses (Captured,
// Completed) are the ones that make a slot unavailable.
const (
	StatusPending   = "pending"
	StatusCaptured  = "captured"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// PaidStatuses lists the statuses that count as paid.
var PaidStatuses = []string{StatusCaptured, StatusCompleted}

// IsPaidStatus reports whether status counts as paid.
func IsPaidStatus(status string) bool {
	return status == StatusCaptured || status == StatusCompleted
}

// Booking represents a confirmed or pending reservation for a service package.
type Booking struct {
	ID           string    `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	SlotDate     string    `bson:"slot_date" json:"slotDate"`            // Slot date in "YYYY-MM-DD" format
	SlotTime     string    `bson:"slot_time" json:"slotTime"`            // Host-local time string, e.g. "14:30"
	SlotStart    time.Time `bson:"slot_start" json:"slotStart"`          // Absolute start instant of the slot
	PackageTitle string    `bson:"package_title" json:"packageTitle"`    // Booked package title
	PackagePrice string    `bson:"package_price" json:"packagePrice"`    // Display price string, e.g. "$100"
	GrossAmount  *float64  `bson:"gross_amount,omitempty" json:"grossAmount,omitempty"`
	NetAmount    *float64  `bson:"net_amount,omitempty" json:"netAmount,omitempty"`

	CustomerName  string `bson:"customer_name" json:"customerName"`
	CustomerEmail string `bson:"customer_email" json:"customerEmail"`
	CustomerPhone string `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	CustomerNote  string `bson:"customer_note,omitempty" json:"customerNote,omitempty"`

	Status       string `bson:"status" json:"status"`
	PayerIdentity string `bson:"payer_identity,omitempty" json:"payerIdentity,omitempty"`

	// OriginalOrderID links an upgrade booking back to the root order it
	// extends. Empty for a first booking.
	OriginalOrderID string `bson:"original_order_id,omitempty" json:"originalOrderId,omitempty"`

	// Referral/coupon economics captured at checkout time.
	ReferralCode      string  `bson:"referral_code,omitempty" json:"referralCode,omitempty"`
	CouponCode        string  `bson:"coupon_code,omitempty" json:"couponCode,omitempty"`
	DiscountPercent   float64 `bson:"discount_percent,omitempty" json:"discountPercent,omitempty"`
	CommissionPercent float64 `bson:"commission_percent,omitempty" json:"commissionPercent,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
