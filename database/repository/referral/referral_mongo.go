package referralRepo

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

// MongoReferralRepo implements ReferralRepository using MongoDB.
type MongoReferralRepo struct {
	coll *mongo.Collection
}

// NewMongoReferralRepo creates a new instance of ReferralRepository using MongoDB.
func NewMongoReferralRepo(dbName string) ReferralRepository {
	coll := database.MongoClient.Database(dbName).Collection("referrals")
	repo := &MongoReferralRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create referral indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoReferralRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reset_token", Value: 1}}, Options: options.Index().SetSparse(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new referral document. The code is stored lowercase so
// lookups stay case-insensitive.
func (r *MongoReferralRepo) Create(ctx context.Context, referral *models.Referral) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	referral.Code = strings.ToLower(referral.Code)
	referral.CreatedAt = now
	referral.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, referral); err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}
	return nil
}

// GetByID retrieves a referral by its unique ID. Returns nil when not found.
func (r *MongoReferralRepo) GetByID(ctx context.Context, id string) (*models.Referral, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByCode retrieves a referral by its code, case-insensitively.
func (r *MongoReferralRepo) GetByCode(ctx context.Context, code string) (*models.Referral, error) {
	return r.findOne(ctx, bson.M{"code": strings.ToLower(strings.TrimSpace(code))})
}

// GetByEmail retrieves a referral by its email. Returns nil when not found.
func (r *MongoReferralRepo) GetByEmail(ctx context.Context, email string) (*models.Referral, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByResetToken retrieves the referral holding an unexpired reset token.
func (r *MongoReferralRepo) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.Referral, error) {
	return r.findOne(ctx, bson.M{
		"reset_token":        token,
		"reset_token_expiry": bson.M{"$gt": now},
	})
}

func (r *MongoReferralRepo) findOne(ctx context.Context, filter bson.M) (*models.Referral, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var referral models.Referral
	if err := r.coll.FindOne(ctx, filter).Decode(&referral); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch referral: %w", err)
	}
	return &referral, nil
}

// UpdateFields applies a partial patch to the referral document.
func (r *MongoReferralRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	patch := bson.M{}
	for k, v := range fields {
		patch[k] = v
	}
	patch["updated_at"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("failed to update referral with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("referral with id %s not found", id)
	}
	return nil
}

// UnsetFields removes the named fields from the referral document.
func (r *MongoReferralRepo) UnsetFields(ctx context.Context, id string, fields ...string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	unset := bson.M{}
	for _, f := range fields {
		unset[f] = ""
	}
	update := bson.M{
		"$unset": unset,
		"$set":   bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to unset fields on referral %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("referral with id %s not found", id)
	}
	return nil
}

// IncrementSuccessfulReferrals bumps the paid-referral counter by one.
func (r *MongoReferralRepo) IncrementSuccessfulReferrals(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"successful_referrals": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment referrals for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("referral with id %s not found", id)
	}
	return nil
}
