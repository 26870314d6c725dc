package checkout

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

type productLookup interface {
	FindProductForVendor(ctx context.Context, productID, vendorID int64) (*models.Product, error)
}

// ValidateCart confirms every cart line references an existing, fully
// populated product belonging to the stated vendor. Lookups run concurrently
// and all of them run to completion; the cart is valid only if every line is.
// Lookup failures never escape as errors: they are logged and the cart is
// reported invalid.
func ValidateCart(ctx context.Context, lines []CartLine, lookup productLookup, logg *logger.Logger) bool {
	if len(lines) == 0 {
		return true
	}

	valid := make([]bool, len(lines))
	lookupErrs := make([]error, len(lines))

	var g errgroup.Group
	for i, line := range lines {
		g.Go(func() error {
			product, err := lookup.FindProductForVendor(ctx, line.ProductID, line.VendorID)
			if err != nil {
				lookupErrs[i] = err
				return nil
			}
			valid[i] = productComplete(product)
			return nil
		})
	}
	_ = g.Wait()

	if combined := multierr.Combine(lookupErrs...); combined != nil {
		if logg != nil {
			logg.Error(ctx, "cart validation lookups failed", combined)
		}
		return false
	}

	for _, ok := range valid {
		if !ok {
			return false
		}
	}
	return true
}

// productComplete rejects rows with blank or missing fields, not just absent
// rows: a product without a name or vendor cannot be sold.
func productComplete(p *models.Product) bool {
	if p == nil {
		return false
	}
	return p.ID != 0 && p.Name != "" && p.VendorID != nil && *p.VendorID != 0
}
