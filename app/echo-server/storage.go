package main

import (
	"context"
	"fmt"

	"oneMinuteShop/business/orders"
	"oneMinuteShop/business/product"
	"oneMinuteShop/business/tenant"
	memoryRepo "oneMinuteShop/internal/repository/memory"
	mongoRepo "oneMinuteShop/internal/repository/mongo"
	psqlRepo "oneMinuteShop/internal/repository/postgres"
	"oneMinuteShop/internal/rest"
	"oneMinuteShop/pkg/config"
	"oneMinuteShop/pkg/database"
)

// storage bundles the repositories of one backend with its lifecycle.
type storage struct {
	tenants  tenant.TenantRepository
	products product.ProductRepository
	orders   orders.OrdersRepository
	prober   rest.StoreProber
	close    func(ctx context.Context) error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Database.Backend {
	case config.BackendMongo:
		db, err := database.ConnectMongoDB(ctx, cfg.Database.URL, cfg.Database.Name)
		if err != nil {
			return nil, err
		}
		store := mongoRepo.NewStore(db)
		if err := store.CreateIndexes(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, err
		}
		return &storage{
			tenants:  mongoRepo.NewTenantRepository(store),
			products: mongoRepo.NewProductRepository(store),
			orders:   mongoRepo.NewOrdersRepository(store),
			prober:   store,
			close:    store.Close,
		}, nil

	case config.BackendPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		store := psqlRepo.NewStore(db, cfg.Database.Name)
		if err := store.AutoMigrate(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, err
		}
		return &storage{
			tenants:  psqlRepo.NewTenantRepository(store),
			products: psqlRepo.NewProductRepository(store),
			orders:   psqlRepo.NewOrdersRepository(store),
			prober:   store,
			close:    store.Close,
		}, nil

	case config.BackendMemory:
		store := memoryRepo.NewStore()
		return &storage{
			tenants:  memoryRepo.NewTenantRepository(store),
			products: memoryRepo.NewProductRepository(store),
			orders:   memoryRepo.NewOrdersRepository(store),
			prober:   store,
			close:    store.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Database.Backend)
}
