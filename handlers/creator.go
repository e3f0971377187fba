package handlers

import (
	"net/http"
	"time"

	"bookday/middleware"
	"bookday/services/referral"
	"bookday/utils"

	"github.com/gin-gonic/gin"
)

const creatorTokenTTL = 24 * time.Hour

// CreatorHandler exposes the creator dashboard: login, split management and
// password lifecycle.
type CreatorHandler struct {
	Service referral.ReferralService
}

// NewCreatorHandler constructs a CreatorHandler.
func NewCreatorHandler(service referral.ReferralService) *CreatorHandler {
	return &CreatorHandler{Service: service}
}

// Login verifies a creator's code and password and issues a bearer token.
func (h *CreatorHandler) Login(c *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	result, err := h.Service.VerifyPassword(c.Request.Context(), req.Code, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(result.ReferralID, "", creatorTokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"referralID": result.ReferralID,
		"name":       result.Name,
	})
}

// GetSplit returns the authenticated creator's economics and unlock state.
func (h *CreatorHandler) GetSplit(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextCreatorID)
	status, err := h.Service.GetSplitStatus(c.Request.Context(), creatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpdateSplit changes the authenticated creator's commission/discount split.
func (h *CreatorHandler) UpdateSplit(c *gin.Context) {
	var req struct {
		CommissionPercent float64 `json:"commissionPercent"`
		DiscountPercent   float64 `json:"discountPercent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	creatorID := c.GetString(middleware.ContextCreatorID)
	status, err := h.Service.UpdateSplit(c.Request.Context(), creatorID, req.CommissionPercent, req.DiscountPercent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ChangePassword sets a new password for the authenticated creator.
func (h *CreatorHandler) ChangePassword(c *gin.Context) {
	var req struct {
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	creatorID := c.GetString(middleware.ContextCreatorID)
	if err := h.Service.SetPassword(c.Request.Context(), creatorID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ForgotPassword issues a reset token. The response is identical whether or
// not the email is registered.
func (h *CreatorHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	if err := h.Service.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "If that email is registered, a reset link is on its way.",
	})
}

// ResetPassword consumes a reset token and stores the new password.
func (h *CreatorHandler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "invalid input", err.Error())
		return
	}

	if err := h.Service.CompleteReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Password has been successfully reset. Please sign in with your new password.",
	})
}
