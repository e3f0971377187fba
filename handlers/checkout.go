package handlers

import (
	"net/http"
	"time"

	"bookday/models"
	"bookday/services/booking"
	"bookday/services/checkout"
	"bookday/services/referral"
	"bookday/services/reservation"
	"bookday/services/tasks"
	"bookday/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutHandler orchestrates the checkout flow: hold the slot, quote the
// discounted price, then confirm or abandon.
type CheckoutHandler struct {
	Reservations reservation.ReservationService
	Bookings     booking.BookingService
	Referrals    referral.ReferralService
	Sessions     *checkout.SessionStore
	Mailer       tasks.Mailer
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(
	reservations reservation.ReservationService,
	bookings booking.BookingService,
	referrals referral.ReferralService,
	sessions *checkout.SessionStore,
	mailer tasks.Mailer,
) *CheckoutHandler {
	return &CheckoutHandler{
		Reservations: reservations,
		Bookings:     bookings,
		Referrals:    referrals,
		Sessions:     sessions,
		Mailer:       mailer,
	}
}

// BeginCheckout creates a slot hold and a checkout session for it.
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	var req struct {
		SlotDate     string    `json:"slotDate" binding:"required"`
		SlotTime     string    `json:"slotTime" binding:"required"`
		SlotStart    time.Time `json:"slotStart" binding:"required"`
		PackageTitle string    `json:"packageTitle"`
		ReferralCode string    `json:"referralCode"`
		CouponCode   string    `json:"couponCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	hold, err := h.Reservations.CreateHold(c.Request.Context(), reservation.HoldRequest{
		SlotDate:     req.SlotDate,
		SlotTime:     req.SlotTime,
		SlotStart:    req.SlotStart,
		PackageTitle: req.PackageTitle,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	session := &models.CheckoutSession{
		SessionID:    uuid.New().String(),
		HoldID:       hold.ID,
		SlotDate:     hold.SlotDate,
		SlotTime:     hold.SlotTime,
		SlotStart:    hold.SlotStart,
		PackageTitle: hold.PackageTitle,
		ReferralCode: req.ReferralCode,
		CouponCode:   req.CouponCode,
		CreatedAt:    time.Now(),
	}
	if err := h.Sessions.Save(c.Request.Context(), session); err != nil {
		// The hold is useless without its session; release it right away.
		_ = h.Reservations.ReleaseHold(c.Request.Context(), hold.ID)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionID": session.SessionID,
		"holdID":    hold.ID,
		"expiresAt": hold.ExpiresAt,
	})
}

// QuoteCheckout applies the referral/coupon stacking rule to a package price.
func (h *CheckoutHandler) QuoteCheckout(c *gin.Context) {
	var req struct {
		Price        float64 `json:"price" binding:"required"`
		ReferralCode string  `json:"referralCode"`
		CouponCode   string  `json:"couponCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	var (
		referralDiscount  float64
		commissionPercent float64
		coupon            *referral.CouponInfo
	)
	if req.ReferralCode != "" {
		info, err := h.Referrals.ValidateReferralCode(c.Request.Context(), req.ReferralCode)
		if err != nil {
			respondError(c, err)
			return
		}
		referralDiscount = info.DiscountPercent
		commissionPercent = info.CommissionPercent
	}
	if req.CouponCode != "" {
		info, err := h.Referrals.ValidateCoupon(c.Request.Context(), req.CouponCode)
		if err != nil {
			respondError(c, err)
			return
		}
		coupon = info
	}

	percent, usedReferral, usedCoupon := referral.EffectiveDiscount(referralDiscount, coupon)
	c.JSON(http.StatusOK, gin.H{
		"discountPercent":   percent,
		"total":             referral.DiscountedPrice(req.Price, percent),
		"referralApplied":   usedReferral,
		"couponApplied":     usedCoupon,
		"commissionPercent": commissionPercent,
	})
}

// CompleteCheckout turns a checkout session into a booking, releases the
// hold and enqueues the confirmation email.
func (h *CheckoutHandler) CompleteCheckout(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.KindNotFound, "checkout session not found or expired", "")
		return
	}

	// The session pins the slot and discount choices made at checkout start.
	input.SlotDate = session.SlotDate
	input.SlotTime = session.SlotTime
	input.SlotStart = session.SlotStart.Format(time.RFC3339)
	input.ReferralCode = session.ReferralCode
	input.CouponCode = session.CouponCode

	bk, err := h.Bookings.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Reservations.ReleaseHold(c.Request.Context(), session.HoldID); err != nil {
		getLogger(c).Warn("failed to release hold after booking", zap.Error(err))
	}
	if err := h.Sessions.Delete(c.Request.Context(), sessionID); err != nil {
		getLogger(c).Warn("failed to delete checkout session", zap.Error(err))
	}

	if h.Mailer != nil {
		body := "<p>Hi " + bk.CustomerName + ",</p><p>Your booking for " + bk.PackageTitle +
			" on " + bk.SlotDate + " at " + bk.SlotTime + " has been received.</p>"
		if err := h.Mailer.Send(c.Request.Context(), bk.CustomerEmail, "Your booking confirmation", body); err != nil {
			getLogger(c).Warn("failed to enqueue confirmation email", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"bookingID": bk.ID, "status": bk.Status})
}

// AbandonCheckout releases the hold and discards the session.
func (h *CheckoutHandler) AbandonCheckout(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		// Already expired: the hold will lapse on its own.
		c.JSON(http.StatusOK, gin.H{"released": false})
		return
	}
	if err := h.Reservations.ReleaseHold(c.Request.Context(), session.HoldID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.Sessions.Delete(c.Request.Context(), sessionID); err != nil {
		getLogger(c).Warn("failed to delete checkout session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"released": true})
}
