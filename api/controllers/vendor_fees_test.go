package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
	"github.com/trailmarket/checkout-backend/pkg/types"
)

type stubVendorFeesService struct {
	fee *models.VendorFee
	err error
}

func (s *stubVendorFeesService) GetByVendor(ctx context.Context, vendorID int64) (*models.VendorFee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fee, nil
}

func getVendorFees(t *testing.T, svc *stubVendorFeesService, vendorID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendors/"+vendorID+"/fees", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("vendorID", vendorID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	GetVendorFees(svc, testLogger()).ServeHTTP(rec, req)
	return rec
}

func TestGetVendorFees(t *testing.T) {
	stub := &stubVendorFeesService{fee: &models.VendorFee{
		ID: 1, VendorID: 1, StandardDelivery: 500, ProcessingFee: 100, ServiceFee: 150,
	}}
	rec := getVendorFees(t, stub, "1")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["standard_delivery"].(float64) != 500 {
		t.Fatalf("unexpected fee payload %v", data)
	}
}

func TestGetVendorFeesNotFound(t *testing.T) {
	stub := &stubVendorFeesService{err: pkgerrors.New(pkgerrors.CodeNotFound, "no fee schedule for vendor")}
	rec := getVendorFees(t, stub, "9")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetVendorFeesRejectsBadID(t *testing.T) {
	rec := getVendorFees(t, &stubVendorFeesService{}, "zero")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}
}
