package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmednasr/luis/server/internal/models"
)

// ExchangeRepository provides Mongo-backed persistence for answered chat requests.
type ExchangeRepository struct {
	col *mongo.Collection
}

// NewExchangeRepository returns an ExchangeRepository on the "exchanges" collection.
func NewExchangeRepository(db *mongo.Database) *ExchangeRepository {
	return &ExchangeRepository{
		col: db.Collection("exchanges"),
	}
}

// EnsureIndexes creates the created_at index used when browsing recent exchanges.
func (r *ExchangeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	})
	return err
}

// Insert stores one exchange.
func (r *ExchangeRepository) Insert(ctx context.Context, e models.Exchange) error {
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		log.Printf("[Exchange Repository] Error inserting exchange %s: %v", e.ID, err)
		return err
	}
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (r *ExchangeRepository) Recent(ctx context.Context, limit int64) ([]models.Exchange, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Exchange
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
