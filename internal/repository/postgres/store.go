package postgres

import (
	"context"
	"fmt"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	DB   *gorm.DB
	name string
}

func NewStore(db *gorm.DB, name string) *Store {
	return &Store{
		DB:   db,
		name: name,
	}
}

// AutoMigrate creates the tables and indexes when they are missing.
func (s *Store) AutoMigrate(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).AutoMigrate(&tenantModel{}, &productModel{}, &orderModel{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

func (s *Store) Status(ctx context.Context) domain.StoreStatus {
	status := domain.StoreStatus{
		Backend: "postgres",
		Name:    s.name,
	}

	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status.Err = err
		return status
	}
	status.Connected = true

	tables, err := s.DB.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		status.Err = err
		return status
	}
	if len(tables) > 10 {
		tables = tables[:10]
	}
	status.Collections = tables

	return status
}

func (s *Store) Close(_ context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// validID reports whether id has the shape of a canonical id.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
