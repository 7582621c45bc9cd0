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

type TenantRepository struct {
	collection *mongo.Collection
}

func NewTenantRepository(store *Store) *TenantRepository {
	return &TenantRepository{
		collection: store.db.Collection(domain.CollectionTenant),
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	res, err := r.collection.InsertOne(ctx, newTenantDocument(tenant))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSubdomainExists
		}
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	tenant.ID = oid.Hex()

	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (domain.Tenant, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Tenant{}, err
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *TenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error) {
	return r.findOne(ctx, bson.M{"subdomain": subdomain})
}

func (r *TenantRepository) findOne(ctx context.Context, filter bson.M) (domain.Tenant, error) {
	var doc tenantDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Tenant{}, domain.ErrTenantNotFound
		}
		return domain.Tenant{}, fmt.Errorf("failed to find tenant: %w", err)
	}

	return doc.toDomain(), nil
}
