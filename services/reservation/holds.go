package reservation

import (
	"context"
	"fmt"
	"time"

	"bookday/models"
	"bookday/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateHold reserves a slot for the duration of one checkout.
//
// The conflict checks and the insert are not atomic across documents; two
// racing calls can both succeed at the store level. That window is accepted:
// the paid-booking unique index rejects the loser at confirmation time, so
// the hold only reduces wasted checkout effort.
func (s *DefaultReservationService) CreateHold(ctx context.Context, req HoldRequest) (*models.SlotHold, error) {
	if req.SlotDate == "" {
		return nil, MissingFieldError{Field: "slotDate"}
	}
	if req.SlotTime == "" {
		return nil, MissingFieldError{Field: "slotTime"}
	}
	if req.SlotStart.IsZero() {
		return nil, MissingFieldError{Field: "slotStart"}
	}

	now := s.now()

	// A paid booking makes the slot permanently unavailable.
	booked, err := s.Bookings.FindPaidBySlot(ctx, req.SlotDate, req.SlotTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot bookings: %w", err)
	}
	if booked != nil {
		return nil, SlotAlreadyBookedError{SlotDate: req.SlotDate, SlotTime: req.SlotTime}
	}

	// An unexpired hold blocks the slot for the rest of its checkout window.
	// Expired holds are filtered out by the query itself.
	held, err := s.Holds.FindActiveBySlot(ctx, req.SlotDate, req.SlotTime, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot holds: %w", err)
	}
	if held != nil {
		return nil, SlotReservedError{
			SlotDate:  req.SlotDate,
			SlotTime:  req.SlotTime,
			ExpiresIn: held.ExpiresAt.Sub(now).Round(time.Second).String(),
		}
	}

	ttl := s.HoldTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	hold := &models.SlotHold{
		ID:           uuid.New().String(),
		SlotDate:     req.SlotDate,
		SlotTime:     req.SlotTime,
		SlotStart:    req.SlotStart,
		PackageTitle: req.PackageTitle,
		ExpiresAt:    now.Add(ttl),
	}
	if err := s.Holds.Create(ctx, hold); err != nil {
		return nil, fmt.Errorf("failed to persist slot hold: %w", err)
	}

	utils.GetLogger().Info("slot hold created",
		zap.String("holdID", hold.ID),
		zap.String("slotDate", hold.SlotDate),
		zap.String("slotTime", hold.SlotTime),
		zap.Time("expiresAt", hold.ExpiresAt),
	)
	return hold, nil
}

// ReleaseHold deletes the hold unconditionally. Expired or unknown holds
// release without error.
func (s *DefaultReservationService) ReleaseHold(ctx context.Context, holdID string) error {
	if holdID == "" {
		return nil
	}
	if err := s.Holds.Delete(ctx, holdID); err != nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	return nil
}
