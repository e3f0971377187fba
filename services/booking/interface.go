package booking

import (
	"context"

	bookingRepo "bookday/database/repository/booking"
	referralRepo "bookday/database/repository/referral"
	"bookday/models"
)

// CreateBookingInput carries the validated checkout submission a booking is
// created from. Fields are persisted verbatim.
type CreateBookingInput struct {
	SlotDate     string   `json:"slotDate" binding:"required"`
	SlotTime     string   `json:"slotTime" binding:"required"`
	SlotStart    string   `json:"slotStart" binding:"required"` // RFC 3339
	PackageTitle string   `json:"packageTitle" binding:"required"`
	PackagePrice string   `json:"packagePrice"`
	GrossAmount  *float64 `json:"grossAmount"`
	NetAmount    *float64 `json:"netAmount"`

	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone"`
	CustomerNote  string `json:"customerNote"`

	// Initial payment status; defaults to pending when empty.
	Status string `json:"status"`

	OriginalOrderID   string  `json:"originalOrderId"`
	ReferralCode      string  `json:"referralCode"`
	CouponCode        string  `json:"couponCode"`
	DiscountPercent   float64 `json:"discountPercent"`
	CommissionPercent float64 `json:"commissionPercent"`
}

// BookingService creates bookings and transitions their payment status.
type BookingService interface {
	// CreateBooking persists a new booking. It does not re-check slot
	// availability itself; the partial unique index on paid slots is the
	// authoritative uniqueness gate and surfaces as SlotTakenError.
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	// UpdateStatus transitions a booking's payment status. Transitions are
	// validated against the lifecycle table: pending may move to captured or
	// failed, captured to completed, and any state may move to failed.
	UpdateStatus(ctx context.Context, bookingID, status, payerIdentity string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Referrals referralRepo.ReferralRepository
}
