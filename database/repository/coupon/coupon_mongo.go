package couponRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookday/database"
	"bookday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new instance of CouponRepository using MongoDB.
func NewMongoCouponRepo(dbName string) CouponRepository {
	coll := database.MongoClient.Database(dbName).Collection("coupons")
	repo := &MongoCouponRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create coupon indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new coupon document with its code normalized to lowercase.
func (r *MongoCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	coupon.Code = strings.ToLower(coupon.Code)
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// GetByCode retrieves a coupon by its code, case-insensitively.
func (r *MongoCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var coupon models.Coupon
	filter := bson.M{"code": strings.ToLower(strings.TrimSpace(code))}
	if err := r.coll.FindOne(ctx, filter).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon: %w", err)
	}
	return &coupon, nil
}
