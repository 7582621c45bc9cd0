// Package mongo stores tenants, products and orders as MongoDB documents,
// one collection per resource.
package mongo

import (
	"context"
	"fmt"

	"oneMinuteShop/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

// CreateIndexes enforces subdomain uniqueness and backs the tenant scoped
// listings. It is idempotent.
func (s *Store) CreateIndexes(ctx context.Context) error {
	_, err := s.db.Collection(domain.CollectionTenant).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subdomain", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create tenant indexes: %w", err)
	}

	scoped := mongo.IndexModel{
		Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "created_at", Value: -1}},
	}
	for _, name := range []string{domain.CollectionProduct, domain.CollectionOrder} {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, scoped); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	return nil
}

// Status lists up to ten collections for the connectivity probe.
func (s *Store) Status(ctx context.Context) domain.StoreStatus {
	status := domain.StoreStatus{
		Backend:   "mongo",
		Name:      s.db.Name(),
		Connected: true,
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		status.Err = err
		return status
	}
	if len(names) > 10 {
		names = names[:10]
	}
	status.Collections = names

	return status
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// newestFirst sorts by creation time, breaking ties by insertion order.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
}
