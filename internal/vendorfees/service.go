package vendorfees

import (
	"context"
	"fmt"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
)

// Service reports the delivery, processing and service fees for a vendor.
type Service interface {
	GetByVendor(ctx context.Context, vendorID int64) (*models.VendorFee, error)
}

type service struct {
	repo Repository
}

// NewService builds the vendor fees service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetByVendor(ctx context.Context, vendorID int64) (*models.VendorFee, error) {
	if vendorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id must be positive")
	}
	fee, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading vendor fees")
	}
	if fee == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no fee schedule for vendor")
	}
	return fee, nil
}
