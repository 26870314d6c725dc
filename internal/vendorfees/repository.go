package vendorfees

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
)

// Repository reads the per-vendor fee schedule.
type Repository interface {
	FindByVendor(ctx context.Context, vendorID int64) (*models.VendorFee, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a vendor fees repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByVendor returns the vendor's fee row. The schema tolerates duplicate
// rows per vendor; the lowest id wins.
func (r *repository) FindByVendor(ctx context.Context, vendorID int64) (*models.VendorFee, error) {
	var fee models.VendorFee
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id ASC").
		First(&fee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fee, nil
}
