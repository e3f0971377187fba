package upgrade

import (
	"context"

	bookingRepo "bookday/database/repository/booking"
	catalogRepo "bookday/database/repository/catalog"
	"bookday/models"
)

// Quote is the result of pricing an upgrade: the target package, what the
// customer has already paid across the order's chain, and the remainder owed.
type Quote struct {
	TargetPackage models.Package `json:"targetPackage"`
	OriginalPaid  float64        `json:"originalPaid"`
	UpgradePrice  float64        `json:"upgradePrice"`
	RootOrderID   string         `json:"rootOrderId"`
}

// UpgradeService computes the price delta owed when a paid booking is
// upgraded to a higher package.
type UpgradeService interface {
	// ComputeUpgrade resolves the upgrade target (by slug, or by the legacy
	// package fallback when no slug is given), aggregates the paid chain
	// rooted at the booking's order, and returns the remaining amount owed.
	// The result never carries a negative upgrade price.
	ComputeUpgrade(ctx context.Context, bookingID, targetSlug string) (*Quote, error)
}

// DefaultUpgradeService is the production UpgradeService.
type DefaultUpgradeService struct {
	Bookings bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
}
