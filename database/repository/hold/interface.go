package holdRepo

import (
	"context"
	"time"

	"bookday/models"
)

// HoldRepository provides data access to slot hold documents. Expiry is
// evaluated lazily at read time; nothing sweeps expired holds on a timer.
type HoldRepository interface {
	Create(ctx context.Context, hold *models.SlotHold) error
	// FindActiveBySlot returns a hold for the slot whose expiry is after now,
	// or nil when none exists. Expired holds are invisible to this query.
	FindActiveBySlot(ctx context.Context, slotDate, slotTime string, now time.Time) (*models.SlotHold, error)
	// Delete removes a hold by id. Deleting a missing hold is not an error.
	Delete(ctx context.Context, id string) error
}
