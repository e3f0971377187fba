package handlers

import (
	"errors"
	"net/http"

	"bookday/services/booking"
	"bookday/services/referral"
	"bookday/services/reservation"
	"bookday/services/upgrade"
	"bookday/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status and a stable
// machine-readable kind. Anything unmapped is treated as an internal error
// and its detail is kept out of the response body.
func respondError(c *gin.Context, err error) {
	switch {
	// Validation failures.
	case errors.As(err, &reservation.MissingFieldError{}),
		errors.As(err, &booking.InvalidStatusError{}):
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, err.Error(), "")

	// Conflicts: the caller must pick a different slot or target.
	case errors.As(err, &reservation.SlotAlreadyBookedError{}),
		errors.As(err, &reservation.SlotReservedError{}),
		errors.As(err, &booking.SlotTakenError{}),
		errors.As(err, &upgrade.AlreadyAtTargetError{}):
		utils.JSONError(c, http.StatusConflict, utils.KindConflict, err.Error(), "")

	// Unknown ids, codes and tokens.
	case errors.As(err, &booking.BookingNotFoundError{}),
		errors.As(err, &referral.CodeNotFoundError{}),
		errors.As(err, &referral.ReferralNotFoundError{}),
		errors.As(err, &referral.CouponNotFoundError{}),
		errors.As(err, &upgrade.BookingNotFoundError{}),
		errors.As(err, &upgrade.UpgradeLinkNotFoundError{}),
		errors.As(err, &upgrade.TargetPackageMissingError{}):
		utils.JSONError(c, http.StatusNotFound, utils.KindNotFound, err.Error(), "")

	// Policy refusals.
	case errors.As(err, &booking.InvalidTransitionError{}),
		errors.As(err, &referral.CouponInactiveError{}),
		errors.As(err, &referral.CouponNotYetValidError{}),
		errors.As(err, &referral.CouponExpiredError{}),
		errors.As(err, &referral.ExceedsMaxError{}),
		errors.As(err, &upgrade.NotPaidError{}),
		errors.As(err, &upgrade.NotEligibleError{}):
		utils.JSONError(c, http.StatusUnprocessableEntity, utils.KindPolicy, err.Error(), "")

	case errors.As(err, &referral.WrongPasswordError{}),
		errors.As(err, &referral.InvalidResetTokenError{}):
		utils.JSONError(c, http.StatusUnauthorized, utils.KindUnauthorized, err.Error(), "")

	default:
		getLogger(c).Error("request failed: " + err.Error())
		utils.JSONError(c, http.StatusInternalServerError, utils.KindInternal,
			"something went wrong, please try again", "")
	}
}
