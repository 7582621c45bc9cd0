package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oneMinuteShop/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrdersRepository struct {
	collection *mongo.Collection
}

func NewOrdersRepository(store *Store) *OrdersRepository {
	return &OrdersRepository{
		collection: store.db.Collection(domain.CollectionOrder),
	}
}

func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	res, err := r.collection.InsertOne(ctx, newOrderDocument(order))
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	order.ID = oid.Hex()

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Order{}, err
	}

	var doc orderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *OrdersRepository) FindByTenant(ctx context.Context, tenantID string) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"tenant_id": tenantID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toDomain())
	}

	return orders, nil
}

func (r *OrdersRepository) Patch(ctx context.Context, id string, patch domain.OrderPatch, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": updatedAt}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.TransactionID != nil {
		set["transaction_id"] = *patch.TransactionID
	}
	if patch.PaymentScreenshotURL != nil {
		set["payment_screenshot_url"] = *patch.PaymentScreenshotURL
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
