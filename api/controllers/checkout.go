package controllers

import (
	"net/http"

	"github.com/trailmarket/checkout-backend/api/responses"
	"github.com/trailmarket/checkout-backend/api/validators"
	checkoutsvc "github.com/trailmarket/checkout-backend/internal/checkout"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

// Checkout handles a checkout submission: shape validation here, semantic
// cart validation and persistence in the service.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Execute(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, receipt.OrderID)
			logg.Info(ctx, "checkout.completed")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			OrderID:    receipt.OrderID,
			TotalCents: receipt.TotalCents,
			ItemCount:  receipt.ItemCount,
		})
	}
}

type checkoutRequest struct {
	CustomerName string         `json:"customer_name" validate:"required"`
	Cart         []cartLine     `json:"cart" validate:"required,min=2,dive"`
	Fees         map[string]any `json:"fees" validate:"required"`
}

type cartLine struct {
	ID              int64              `json:"id" validate:"required,gt=0"`
	Quantity        int                `json:"quantity" validate:"required,gt=0"`
	VendorID        int64              `json:"vendor_id" validate:"required,gt=0"`
	Price           any                `json:"price" validate:"required"`
	DeliveryAddress deliveryAddressDTO `json:"delivery_address"`
}

type deliveryAddressDTO struct {
	Name    string  `json:"delivery_address_name" validate:"required"`
	Line1   string  `json:"delivery_address_line_1" validate:"required"`
	Line2   *string `json:"delivery_address_line_2,omitempty"`
	City    string  `json:"delivery_address_city" validate:"required"`
	State   string  `json:"delivery_address_state" validate:"required"`
	ZipCode string  `json:"delivery_address_zip_code" validate:"required"`
	Country string  `json:"delivery_address_country" validate:"required"`
}

type checkoutResponse struct {
	OrderID    int64 `json:"order_id"`
	TotalCents int64 `json:"total_cents"`
	ItemCount  int   `json:"item_count"`
}

func (req checkoutRequest) toInput() checkoutsvc.Input {
	lines := make([]checkoutsvc.CartLine, 0, len(req.Cart))
	for _, line := range req.Cart {
		lines = append(lines, checkoutsvc.CartLine{
			ProductID: line.ID,
			VendorID:  line.VendorID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Address: checkoutsvc.DeliveryAddress{
				Name:    line.DeliveryAddress.Name,
				Line1:   line.DeliveryAddress.Line1,
				Line2:   line.DeliveryAddress.Line2,
				City:    line.DeliveryAddress.City,
				State:   line.DeliveryAddress.State,
				ZipCode: line.DeliveryAddress.ZipCode,
				Country: line.DeliveryAddress.Country,
			},
		})
	}
	return checkoutsvc.Input{
		CustomerName: req.CustomerName,
		Cart:         lines,
		Fees:         req.Fees,
	}
}
