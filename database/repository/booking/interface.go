package bookingRepo

import (
	"context"

	"bookday/models"
)

// BookingRepository provides data access to booking documents.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateFields applies a partial patch ($set) to the booking document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// FindPaidBySlot returns the paid (captured/completed) booking occupying
	// the given slot, or nil when the slot is free.
	FindPaidBySlot(ctx context.Context, slotDate, slotTime string) (*models.Booking, error)
	// FindPaidChain returns all paid bookings whose id equals rootID or whose
	// original_order_id equals rootID: the full paid chain for one order.
	FindPaidChain(ctx context.Context, rootID string) ([]models.Booking, error)
}
