package controllers

import (
	"net/http"

	"github.com/trailmarket/checkout-backend/api/responses"
	"github.com/trailmarket/checkout-backend/api/validators"
	feesvc "github.com/trailmarket/checkout-backend/internal/vendorfees"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

// GetVendorFees returns a vendor's fee schedule.
func GetVendorFees(svc feesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendor fees service unavailable"))
			return
		}

		vendorID, err := validators.ParseURLInt64(r, "vendorID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fee, err := svc.GetByVendor(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vendorFeeResponse{
			VendorID:         fee.VendorID,
			StandardDelivery: fee.StandardDelivery,
			ProcessingFee:    fee.ProcessingFee,
			ServiceFee:       fee.ServiceFee,
		})
	}
}

type vendorFeeResponse struct {
	VendorID         int64 `json:"vendor_id"`
	StandardDelivery int64 `json:"standard_delivery"`
	ProcessingFee    int64 `json:"processing_fee"`
	ServiceFee       int64 `json:"service_fee"`
}
