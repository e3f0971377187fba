package upgrade

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bookday/models"
	"bookday/utils"

	"go.uber.org/zap"
)

// Default upgrade path used when no slug is given: bookings of the legacy
// starter package upgrade into the premium package.
const (
	legacyPackageName  = "Starter Session"
	legacyTargetTitle  = "Premium Session"
	upgradeSuffix      = "(upgrade)"
)

// ComputeUpgrade prices the upgrade of a paid booking to a target package.
func (s *DefaultUpgradeService) ComputeUpgrade(ctx context.Context, bookingID, targetSlug string) (*Quote, error) {
	bk, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if bk == nil {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}
	if !models.IsPaidStatus(bk.Status) {
		return nil, NotPaidError{BookingID: bookingID, Status: bk.Status}
	}

	target, err := s.resolveTarget(ctx, bk, targetSlug)
	if err != nil {
		return nil, err
	}

	// The root order id anchors the chain of bookings that together represent
	// this customer's cumulative spend.
	rootID := bk.OriginalOrderID
	if rootID == "" {
		rootID = bk.ID
	}
	chain, err := s.Bookings.FindPaidChain(ctx, rootID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid chain: %w", err)
	}

	targetTitle := normalizeTitle(target.Title)
	var originalPaid float64
	for i := range chain {
		if normalizeTitle(chain[i].PackageTitle) == targetTitle {
			return nil, AlreadyAtTargetError{PackageTitle: target.Title}
		}
		originalPaid += paidAmount(&chain[i])
	}

	price := target.Price
	if price == 0 {
		price = ParseDisplayPrice(target.PriceText)
	}
	// Round once, at the end; intermediate sums keep full precision.
	upgradePrice := round2(price - originalPaid)
	if upgradePrice < 0 {
		upgradePrice = 0
	}

	utils.GetLogger().Debug("upgrade priced",
		zap.String("bookingID", bookingID),
		zap.String("target", target.Title),
		zap.Float64("originalPaid", originalPaid),
		zap.Float64("upgradePrice", upgradePrice),
	)

	return &Quote{
		TargetPackage: *target,
		OriginalPaid:  originalPaid,
		UpgradePrice:  upgradePrice,
		RootOrderID:   rootID,
	}, nil
}

// resolveTarget picks the upgrade target package: by slug through an upgrade
// link, or by the legacy fallback keyed off the booking's package title.
func (s *DefaultUpgradeService) resolveTarget(ctx context.Context, bk *models.Booking, targetSlug string) (*models.Package, error) {
	if targetSlug != "" {
		link, err := s.Catalog.GetUpgradeLinkBySlug(ctx, targetSlug)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve upgrade link: %w", err)
		}
		if link == nil {
			return nil, UpgradeLinkNotFoundError{Slug: targetSlug}
		}
		pkg, err := s.Catalog.GetPackageByTitle(ctx, link.PackageTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve upgrade target: %w", err)
		}
		if pkg == nil {
			return nil, UpgradeLinkNotFoundError{Slug: targetSlug}
		}
		return pkg, nil
	}

	if !strings.Contains(bk.PackageTitle, legacyPackageName) {
		return nil, NotEligibleError{PackageTitle: bk.PackageTitle}
	}
	pkg, err := s.Catalog.GetPackageByTitle(ctx, legacyTargetTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default upgrade target: %w", err)
	}
	if pkg == nil {
		return nil, TargetPackageMissingError{Title: legacyTargetTitle}
	}
	return pkg, nil
}

// paidAmount resolves what a booking actually paid, with fallback precedence:
// explicit net amount, explicit gross amount, then a parse of the display
// price string.
func paidAmount(bk *models.Booking) float64 {
	if bk.NetAmount != nil && isFinite(*bk.NetAmount) {
		return *bk.NetAmount
	}
	if bk.GrossAmount != nil && isFinite(*bk.GrossAmount) {
		return *bk.GrossAmount
	}
	return ParseDisplayPrice(bk.PackagePrice)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseDisplayPrice extracts a number from a display price string such as
// "$1,299.50" by stripping everything except digits and dots. Unparseable
// input yields 0.
func ParseDisplayPrice(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || !isFinite(value) {
		return 0
	}
	return value
}

// normalizeTitle case-folds a package title and strips a trailing "(upgrade)"
// marker so that upgrade bookings compare equal to their base package.
func normalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = strings.TrimSuffix(t, upgradeSuffix)
	return strings.TrimSpace(t)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
