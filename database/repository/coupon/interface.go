package couponRepo

import (
	"context"

	"bookday/models"
)

// CouponRepository provides data access to coupon documents.
type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	// GetByCode looks up a coupon by its code, case-insensitively. Returns
	// nil when the code is unknown.
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}
