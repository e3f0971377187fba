package catalogRepo

import (
	"context"

	"bookday/models"
)

// CatalogRepository provides read access to the package catalog and the
// upgrade links that name upgrade paths into it.
type CatalogRepository interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	// GetPackageByTitle resolves a package by exact title. Returns nil when
	// no package carries that title.
	GetPackageByTitle(ctx context.Context, title string) (*models.Package, error)
	// GetUpgradeLinkBySlug resolves an upgrade link by slug. Returns nil when
	// the slug is unknown.
	GetUpgradeLinkBySlug(ctx context.Context, slug string) (*models.UpgradeLink, error)
}
