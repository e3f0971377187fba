package handlers

import (
	"net/http"

	"bookday/services/referral"

	"github.com/gin-gonic/gin"
)

// ReferralHandler exposes the public code/coupon validation endpoints the
// checkout page calls while the customer types.
type ReferralHandler struct {
	Service referral.ReferralService
}

// NewReferralHandler constructs a ReferralHandler.
func NewReferralHandler(service referral.ReferralService) *ReferralHandler {
	return &ReferralHandler{Service: service}
}

// ValidateCode resolves a referral code.
func (h *ReferralHandler) ValidateCode(c *gin.Context) {
	info, err := h.Service.ValidateReferralCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// ValidateCoupon resolves a coupon code and reports whether it can stack
// with a referral discount.
func (h *ReferralHandler) ValidateCoupon(c *gin.Context) {
	info, err := h.Service.ValidateCoupon(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
