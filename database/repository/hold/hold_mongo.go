package holdRepo

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

// MongoHoldRepo implements HoldRepository using MongoDB.
type MongoHoldRepo struct {
	coll *mongo.Collection
}

// NewMongoHoldRepo creates a new instance of HoldRepository using MongoDB.
func NewMongoHoldRepo(dbName string) HoldRepository {
	coll := database.MongoClient.Database(dbName).Collection("slot_holds")
	repo := &MongoHoldRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create hold indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates lookup indexes. Deliberately no TTL index: expired
// holds must stay queryable as plain documents so that validity remains a
// pure function of (expires_at, now).
func (r *MongoHoldRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slot_date", Value: 1}, {Key: "slot_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new hold document.
func (r *MongoHoldRepo) Create(ctx context.Context, hold *models.SlotHold) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	hold.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, hold); err != nil {
		return fmt.Errorf("failed to create slot hold: %w", err)
	}
	return nil
}

// FindActiveBySlot returns an unexpired hold for the slot, if any.
func (r *MongoHoldRepo) FindActiveBySlot(ctx context.Context, slotDate, slotTime string, now time.Time) (*models.SlotHold, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"slot_date":  slotDate,
		"slot_time":  slotTime,
		"expires_at": bson.M{"$gt": now},
	}
	var hold models.SlotHold
	if err := r.coll.FindOne(ctx, filter).Decode(&hold); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query hold for slot %s %s: %w", slotDate, slotTime, err)
	}
	return &hold, nil
}

// Delete removes a hold by id. Missing documents are ignored so release
// stays idempotent.
func (r *MongoHoldRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete hold with id %s: %w", id, err)
	}
	return nil
}
