package checkout

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
)

// Repository is the persistence gateway for the checkout transaction. All
// statements are parameter-bound through GORM.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindProductForVendor(ctx context.Context, productID, vendorID int64) (*models.Product, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateAddress(ctx context.Context, address *models.Address) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a checkout repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// FindProductForVendor resolves a cart line's (product, vendor) pair. A nil
// product with a nil error means the pair does not exist.
func (r *repository) FindProductForVendor(ctx context.Context, productID, vendorID int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN vendors ON vendors.id = products.vendor_id").
		Where("products.id = ? AND vendors.id = ?", productID, vendorID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) CreateAddress(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *repository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
