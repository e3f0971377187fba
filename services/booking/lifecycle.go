package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "bookday/database/repository/booking"
	"bookday/models"
	"bookday/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var knownStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusCaptured:  true,
	models.StatusCompleted: true,
	models.StatusFailed:    true,
}

// canTransition encodes the payment lifecycle: pending → captured | failed,
// captured → completed, any state → failed. Re-asserting the current status
// is a no-op, not an error.
func canTransition(from, to string) bool {
	switch {
	case from == to:
		return true
	case to == models.StatusFailed:
		return true
	case from == models.StatusPending && to == models.StatusCaptured:
		return true
	case from == models.StatusCaptured && to == models.StatusCompleted:
		return true
	}
	return false
}

// CreateBooking persists a new booking from a validated checkout submission.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !knownStatuses[status] {
		return nil, InvalidStatusError{Status: status}
	}

	slotStart, err := time.Parse(time.RFC3339, input.SlotStart)
	if err != nil {
		return nil, fmt.Errorf("invalid slotStart: %w", err)
	}

	bk := &models.Booking{
		ID:                uuid.New().String(),
		SlotDate:          input.SlotDate,
		SlotTime:          input.SlotTime,
		SlotStart:         slotStart,
		PackageTitle:      input.PackageTitle,
		PackagePrice:      input.PackagePrice,
		GrossAmount:       input.GrossAmount,
		NetAmount:         input.NetAmount,
		CustomerName:      input.CustomerName,
		CustomerEmail:     input.CustomerEmail,
		CustomerPhone:     input.CustomerPhone,
		CustomerNote:      input.CustomerNote,
		Status:            status,
		OriginalOrderID:   input.OriginalOrderID,
		ReferralCode:      input.ReferralCode,
		CouponCode:        input.CouponCode,
		DiscountPercent:   input.DiscountPercent,
		CommissionPercent: input.CommissionPercent,
	}

	if err := s.Repo.Create(ctx, bk); err != nil {
		if err == bookingRepo.ErrDuplicateSlot {
			return nil, SlotTakenError{SlotDate: input.SlotDate, SlotTime: input.SlotTime}
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", bk.ID),
		zap.String("slotDate", bk.SlotDate),
		zap.String("slotTime", bk.SlotTime),
		zap.String("status", bk.Status),
	)
	return bk, nil
}

// UpdateStatus transitions a booking's payment status.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, status, payerIdentity string) error {
	if !knownStatuses[status] {
		return InvalidStatusError{Status: status}
	}

	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if bk == nil {
		return BookingNotFoundError{BookingID: bookingID}
	}
	if !canTransition(bk.Status, status) {
		return InvalidTransitionError{From: bk.Status, To: status}
	}

	fields := map[string]interface{}{"status": status}
	if payerIdentity != "" {
		fields["payer_identity"] = payerIdentity
	}
	if err := s.Repo.UpdateFields(ctx, bookingID, fields); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	// A booking enters the paid states exactly once, on pending → captured.
	// That is when the referring creator's counter is credited.
	if bk.Status == models.StatusPending && status == models.StatusCaptured && bk.ReferralCode != "" {
		s.creditReferral(ctx, bk)
	}

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("from", bk.Status),
		zap.String("to", status),
	)
	return nil
}

// creditReferral bumps the referring creator's successful-referral counter.
// Best effort: a miss here never fails the payment transition.
func (s *DefaultBookingService) creditReferral(ctx context.Context, bk *models.Booking) {
	if s.Referrals == nil {
		return
	}
	ref, err := s.Referrals.GetByCode(ctx, bk.ReferralCode)
	if err != nil || ref == nil {
		utils.GetLogger().Warn("could not resolve referral code for credit",
			zap.String("bookingID", bk.ID),
			zap.String("code", bk.ReferralCode),
			zap.Error(err),
		)
		return
	}
	if err := s.Referrals.IncrementSuccessfulReferrals(ctx, ref.ID); err != nil {
		utils.GetLogger().Warn("failed to credit referral",
			zap.String("referralID", ref.ID),
			zap.Error(err),
		)
	}
}

// GetBooking retrieves a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if bk == nil {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}
	return bk, nil
}
