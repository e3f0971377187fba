package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"bookday/database"
	"bookday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	packages *mongo.Collection
	upgrades *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(dbName string) CatalogRepository {
	db := database.MongoClient.Database(dbName)
	repo := &MongoCatalogRepo{
		packages: db.Collection("packages"),
		upgrades: db.Collection("upgrade_links"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.packages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create package indexes: %w", err)
	}
	if _, err := r.upgrades.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create upgrade link indexes: %w", err)
	}
	return nil
}

// ListPackages returns the full package catalog.
func (r *MongoCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

// GetPackageByTitle resolves a package by exact title.
func (r *MongoCatalogRepo) GetPackageByTitle(ctx context.Context, title string) (*models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.packages.FindOne(ctx, bson.M{"title": title}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package %q: %w", title, err)
	}
	return &pkg, nil
}

// GetUpgradeLinkBySlug resolves an upgrade link by slug.
func (r *MongoCatalogRepo) GetUpgradeLinkBySlug(ctx context.Context, slug string) (*models.UpgradeLink, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var link models.UpgradeLink
	if err := r.upgrades.FindOne(ctx, bson.M{"slug": slug}).Decode(&link); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch upgrade link %q: %w", slug, err)
	}
	return &link, nil
}
