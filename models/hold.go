package models

import "time"

// SlotHold is a short-lived placeholder reserving a slot while a customer
// completes checkout. A hold whose expiry has passed is inert; readers must
// compare ExpiresAt against now instead of trusting mere presence.
type SlotHold struct {
	ID           string    `bson:"id" json:"id"`
	SlotDate     string    `bson:"slot_date" json:"slotDate"`
	SlotTime     string    `bson:"slot_time" json:"slotTime"`
	SlotStart    time.Time `bson:"slot_start" json:"slotStart"`
	PackageTitle string    `bson:"package_title,omitempty" json:"packageTitle,omitempty"`
	ExpiresAt    time.Time `bson:"expires_at" json:"expiresAt"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// Active reports whether the hold still reserves its slot at the given instant.
func (h *SlotHold) Active(now time.Time) bool {
	return h.ExpiresAt.After(now)
}
