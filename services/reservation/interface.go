package reservation

import (
	"context"
	"time"

	bookingRepo "bookday/database/repository/booking"
	holdRepo "bookday/database/repository/hold"
	"bookday/models"
)

// HoldRequest carries the fields identifying the slot a customer wants to
// hold while completing checkout.
type HoldRequest struct {
	SlotDate     string    `json:"slotDate"`
	SlotTime     string    `json:"slotTime"`
	SlotStart    time.Time `json:"slotStart"`
	PackageTitle string    `json:"packageTitle"`
}

// ReservationService owns the slot hold lifecycle. Holds are a courtesy to
// the customer: the partial unique index on paid bookings is what ultimately
// keeps a slot from being sold twice.
type ReservationService interface {
	// CreateHold reserves the slot for the checkout window. Fails with
	// SlotAlreadyBookedError when a paid booking occupies the slot and with
	// SlotReservedError when another unexpired hold does.
	CreateHold(ctx context.Context, req HoldRequest) (*models.SlotHold, error)
	// ReleaseHold deletes a hold. Releasing a missing or expired hold is a no-op.
	ReleaseHold(ctx context.Context, holdID string) error
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Holds    holdRepo.HoldRepository
	Bookings bookingRepo.BookingRepository
	HoldTTL  time.Duration
	// Now is the clock; tests override it. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
