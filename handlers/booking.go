package handlers

import (
	"net/http"

	"bookday/services/booking"
	"bookday/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking reads and the payment status callback.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetBooking returns a booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// UpdateStatus consumes a payment result from the gateway and transitions
// the booking. The gateway integration itself lives elsewhere; only the
// resulting status arrives here.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status        string `json:"status" binding:"required"`
		PayerIdentity string `json:"payerIdentity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.PayerIdentity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
