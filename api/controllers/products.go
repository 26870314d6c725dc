package controllers

import (
	"net/http"

	"github.com/trailmarket/checkout-backend/api/responses"
	"github.com/trailmarket/checkout-backend/api/validators"
	productsvc "github.com/trailmarket/checkout-backend/internal/products"
	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

// ListProducts returns the whole catalog.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductListResponse(products))
	}
}

// ListVendorProducts returns the catalog filtered to one vendor.
func ListVendorProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "products service unavailable"))
			return
		}

		vendorID, err := validators.ParseURLInt64(r, "vendorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListByVendor(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductListResponse(products))
	}
}

type productResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	VendorID *int64 `json:"vendor_id"`
}

func newProductListResponse(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			VendorID: p.VendorID,
		})
	}
	return out
}
