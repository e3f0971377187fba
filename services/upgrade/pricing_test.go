package upgrade

import (
	"context"
	"testing"

	"bookday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, bk := range bookings {
		f.bookings[bk.ID] = bk
	}
	return f
}

func (f *fakeBookingRepo) Create(_ context.Context, bk *models.Booking) error {
	f.bookings[bk.ID] = bk
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if bk, ok := f.bookings[id]; ok {
		cp := *bk
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (f *fakeBookingRepo) FindPaidBySlot(_ context.Context, slotDate, slotTime string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindPaidChain(_ context.Context, rootID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.bookings {
		if models.IsPaidStatus(bk.Status) && (bk.ID == rootID || bk.OriginalOrderID == rootID) {
			out = append(out, *bk)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	packages map[string]*models.Package    // by title
	links    map[string]*models.UpgradeLink // by slug
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		packages: make(map[string]*models.Package),
		links:    make(map[string]*models.UpgradeLink),
	}
}

func (f *fakeCatalogRepo) addPackage(title string, price float64, priceText string) {
	f.packages[title] = &models.Package{Title: title, Price: price, PriceText: priceText}
}

func (f *fakeCatalogRepo) addLink(slug, packageTitle string) {
	f.links[slug] = &models.UpgradeLink{Slug: slug, PackageTitle: packageTitle}
}

func (f *fakeCatalogRepo) ListPackages(_ context.Context) ([]models.Package, error) {
	var out []models.Package
	for _, pkg := range f.packages {
		out = append(out, *pkg)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetPackageByTitle(_ context.Context, title string) (*models.Package, error) {
	if pkg, ok := f.packages[title]; ok {
		cp := *pkg
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepo) GetUpgradeLinkBySlug(_ context.Context, slug string) (*models.UpgradeLink, error) {
	if link, ok := f.links[slug]; ok {
		cp := *link
		return &cp, nil
	}
	return nil, nil
}

func amount(f float64) *float64 { return &f }

func TestComputeUpgrade_LegacyDefaultPath(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID:           "b1",
		Status:       models.StatusCaptured,
		PackageTitle: "Starter Session",
		PackagePrice: "$100",
	})
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.OriginalPaid)
	assert.Equal(t, 50.0, quote.UpgradePrice)
	assert.Equal(t, "Premium Session", quote.TargetPackage.Title)
	assert.Equal(t, "b1", quote.RootOrderID)
}

func TestComputeUpgrade_SlugPath(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID:           "b1",
		Status:       models.StatusCompleted,
		PackageTitle: "Mini Shoot",
		NetAmount:    amount(60),
	})
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Full Day Shoot", 400, "")
	catalog.addLink("full-day", "Full Day Shoot")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "full-day")
	require.NoError(t, err)
	assert.Equal(t, 60.0, quote.OriginalPaid)
	assert.Equal(t, 340.0, quote.UpgradePrice)
}

func TestComputeUpgrade_ChainAggregation(t *testing.T) {
	// The customer paid 80 on the original booking and 20 on an earlier
	// upgrade; moving to a 150 package owes the remaining 50.
	bookings := newFakeBookingRepo(
		&models.Booking{
			ID:           "b1",
			Status:       models.StatusCompleted,
			PackageTitle: "Starter Session",
			NetAmount:    amount(80),
		},
		&models.Booking{
			ID:              "b2",
			OriginalOrderID: "b1",
			Status:          models.StatusCaptured,
			PackageTitle:    "Extended Session (upgrade)",
			NetAmount:       amount(20),
		},
	)
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	// Quoting from either booking in the chain produces the same answer,
	// anchored at the same root.
	for _, id := range []string{"b1", "b2"} {
		quote, err := svc.ComputeUpgrade(context.Background(), id, "")
		require.NoError(t, err, id)
		assert.Equal(t, 100.0, quote.OriginalPaid, id)
		assert.Equal(t, 50.0, quote.UpgradePrice, id)
		assert.Equal(t, "b1", quote.RootOrderID, id)
	}
}

func TestComputeUpgrade_IgnoresUnpaidChainMembers(t *testing.T) {
	bookings := newFakeBookingRepo(
		&models.Booking{
			ID:           "b1",
			Status:       models.StatusCaptured,
			PackageTitle: "Starter Session",
			NetAmount:    amount(80),
		},
		&models.Booking{
			ID:              "b2",
			OriginalOrderID: "b1",
			Status:          models.StatusFailed,
			PackageTitle:    "Extended Session (upgrade)",
			NetAmount:       amount(20),
		},
	)
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.Equal(t, 80.0, quote.OriginalPaid)
	assert.Equal(t, 70.0, quote.UpgradePrice)
}

func TestComputeUpgrade_AlreadyAtTarget(t *testing.T) {
	// An earlier upgrade already bought the target; the "(upgrade)" marker
	// and casing do not hide that.
	bookings := newFakeBookingRepo(
		&models.Booking{
			ID:           "b1",
			Status:       models.StatusCompleted,
			PackageTitle: "Starter Session",
			NetAmount:    amount(100),
		},
		&models.Booking{
			ID:              "b2",
			OriginalOrderID: "b1",
			Status:          models.StatusCaptured,
			PackageTitle:    "premium session (Upgrade)",
			NetAmount:       amount(50),
		},
	)
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	_, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	var already AlreadyAtTargetError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "Premium Session", already.PackageTitle)
}

func TestComputeUpgrade_NeverNegative(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID:           "b1",
		Status:       models.StatusCaptured,
		PackageTitle: "Starter Session",
		NetAmount:    amount(200), // paid more than the target costs
	})
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.UpgradePrice)
}

func TestComputeUpgrade_RoundsOnceAtEnd(t *testing.T) {
	bookings := newFakeBookingRepo(
		&models.Booking{
			ID:           "b1",
			Status:       models.StatusCaptured,
			PackageTitle: "Starter Session",
			NetAmount:    amount(33.335),
		},
		&models.Booking{
			ID:              "b2",
			OriginalOrderID: "b1",
			Status:          models.StatusCaptured,
			PackageTitle:    "Extended Session (upgrade)",
			NetAmount:       amount(33.335),
		},
	)
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	require.NoError(t, err)
	// 150 - 66.67 rounded once, not 150 - (33.34 + 33.34).
	assert.Equal(t, 83.33, quote.UpgradePrice)
}

func TestComputeUpgrade_AmountFallbackOrder(t *testing.T) {
	cases := []struct {
		name string
		bk   models.Booking
		want float64
	}{
		{
			name: "net wins over gross and display",
			bk:   models.Booking{NetAmount: amount(80), GrossAmount: amount(90), PackagePrice: "$100"},
			want: 80,
		},
		{
			name: "gross when net missing",
			bk:   models.Booking{GrossAmount: amount(90), PackagePrice: "$100"},
			want: 90,
		},
		{
			name: "display price when no amounts",
			bk:   models.Booking{PackagePrice: "$100"},
			want: 100,
		},
		{
			name: "unparseable display price counts as zero",
			bk:   models.Booking{PackagePrice: "contact us"},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bk := tc.bk
			bk.ID = "b1"
			bk.Status = models.StatusCaptured
			bk.PackageTitle = "Starter Session"
			catalog := newFakeCatalogRepo()
			catalog.addPackage("Premium Session", 150, "")
			svc := &DefaultUpgradeService{Bookings: newFakeBookingRepo(&bk), Catalog: catalog}

			quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, quote.OriginalPaid)
		})
	}
}

func TestComputeUpgrade_TargetPriceFallsBackToDisplayText(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID:           "b1",
		Status:       models.StatusCaptured,
		PackageTitle: "Starter Session",
		NetAmount:    amount(100),
	})
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 0, "$1,299.50")
	svc := &DefaultUpgradeService{Bookings: bookings, Catalog: catalog}

	quote, err := svc.ComputeUpgrade(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.Equal(t, 1199.50, quote.UpgradePrice)
}

func TestComputeUpgrade_Errors(t *testing.T) {
	catalog := newFakeCatalogRepo()
	catalog.addPackage("Premium Session", 150, "")

	t.Run("unknown booking", func(t *testing.T) {
		svc := &DefaultUpgradeService{Bookings: newFakeBookingRepo(), Catalog: catalog}
		_, err := svc.ComputeUpgrade(context.Background(), "missing", "")
		assert.ErrorAs(t, err, &BookingNotFoundError{})
	})

	t.Run("unpaid booking", func(t *testing.T) {
		svc := &DefaultUpgradeService{
			Bookings: newFakeBookingRepo(&models.Booking{
				ID: "b1", Status: models.StatusPending, PackageTitle: "Starter Session",
			}),
			Catalog: catalog,
		}
		_, err := svc.ComputeUpgrade(context.Background(), "b1", "")
		assert.ErrorAs(t, err, &NotPaidError{})
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc := &DefaultUpgradeService{
			Bookings: newFakeBookingRepo(&models.Booking{
				ID: "b1", Status: models.StatusCaptured, PackageTitle: "Mini Shoot",
			}),
			Catalog: catalog,
		}
		_, err := svc.ComputeUpgrade(context.Background(), "b1", "no-such-path")
		assert.ErrorAs(t, err, &UpgradeLinkNotFoundError{})
	})

	t.Run("package without upgrade path", func(t *testing.T) {
		svc := &DefaultUpgradeService{
			Bookings: newFakeBookingRepo(&models.Booking{
				ID: "b1", Status: models.StatusCaptured, PackageTitle: "Mini Shoot",
			}),
			Catalog: catalog,
		}
		_, err := svc.ComputeUpgrade(context.Background(), "b1", "")
		assert.ErrorAs(t, err, &NotEligibleError{})
	})

	t.Run("default target missing from catalog", func(t *testing.T) {
		svc := &DefaultUpgradeService{
			Bookings: newFakeBookingRepo(&models.Booking{
				ID: "b1", Status: models.StatusCaptured, PackageTitle: "Starter Session",
			}),
			Catalog: newFakeCatalogRepo(),
		}
		_, err := svc.ComputeUpgrade(context.Background(), "b1", "")
		assert.ErrorAs(t, err, &TargetPackageMissingError{})
	})
}

func TestParseDisplayPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$100", 100},
		{"$1,299.50", 1299.50},
		{"99.99 EUR", 99.99},
		{"free", 0},
		{"", 0},
		{"$1.2.3", 0}, // two dots do not parse
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDisplayPrice(tc.in), tc.in)
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "premium session", normalizeTitle("Premium Session"))
	assert.Equal(t, "premium session", normalizeTitle("  Premium Session (upgrade) "))
	assert.Equal(t, "premium session", normalizeTitle("premium session(upgrade)"))
}
