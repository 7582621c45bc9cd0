package mongo

import (
	"context"
	"errors"
	"fmt"

	"oneMinuteShop/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{
		collection: store.db.Collection(domain.CollectionProduct),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	res, err := r.collection.InsertOne(ctx, newProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	product.ID = oid.Hex()

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Product{}, err
	}

	var doc productDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]domain.Product, error) {
	filter := bson.M{"tenant_id": tenantID}
	if onlyActive {
		filter["is_active"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toDomain())
	}

	return products, nil
}

// Update overwrites every mutable field; tenant_id and created_at are
// left as stored.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := objectID(product.ID)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"inventory":   product.Inventory,
			"image_urls":  product.ImageURLs,
			"is_active":   product.IsActive,
			"updated_at":  product.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
