package products

import (
	"context"
	"fmt"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
)

// Service lists the product catalog. The catalog is reference data; checkout
// never writes to it.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]models.Product, error)
}

type service struct {
	repo Repository
}

// NewService builds the products service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}
	return products, nil
}

func (s *service) ListByVendor(ctx context.Context, vendorID int64) ([]models.Product, error) {
	if vendorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id must be positive")
	}
	products, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing vendor products")
	}
	return products, nil
}
