package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
)

// Repository exposes read-only catalog queries.
type Repository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByVendor(ctx context.Context, vendorID int64) ([]models.Product, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindByVendor(ctx context.Context, vendorID int64) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
