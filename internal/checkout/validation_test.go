package checkout

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailmarket/checkout-backend/pkg/db/models"
	"github.com/trailmarket/checkout-backend/pkg/logger"
)

type stubLookup struct {
	products map[[2]int64]*models.Product
	err      error
}

func (s *stubLookup) FindProductForVendor(_ context.Context, productID, vendorID int64) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products[[2]int64{productID, vendorID}], nil
}

func vendorRef(id int64) *int64 { return &id }

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestValidateCartAllLinesResolve(t *testing.T) {
	lookup := &stubLookup{products: map[[2]int64]*models.Product{
		{1, 1}: {ID: 1, Name: "Floaties", Price: 5000, VendorID: vendorRef(1)},
		{3, 2}: {ID: 3, Name: "Mountain Bike", Price: 75000, VendorID: vendorRef(2)},
	}}
	lines := []CartLine{
		{ProductID: 1, VendorID: 1, Quantity: 2},
		{ProductID: 3, VendorID: 2, Quantity: 1},
	}

	assert.True(t, ValidateCart(context.Background(), lines, lookup, testLogger()))
}

func TestValidateCartUnknownPairInvalidatesWholeCart(t *testing.T) {
	lookup := &stubLookup{products: map[[2]int64]*models.Product{
		{1, 1}: {ID: 1, Name: "Floaties", Price: 5000, VendorID: vendorRef(1)},
	}}
	lines := []CartLine{
		{ProductID: 1, VendorID: 1, Quantity: 2},
		{ProductID: 99, VendorID: 1, Quantity: 1},
	}

	assert.False(t, ValidateCart(context.Background(), lines, lookup, testLogger()))
}

func TestValidateCartIncompleteRowInvalidates(t *testing.T) {
	cases := map[string]*models.Product{
		"blank name":     {ID: 1, Name: "", Price: 5000, VendorID: vendorRef(1)},
		"missing vendor": {ID: 1, Name: "Floaties", Price: 5000, VendorID: nil},
	}
	for name, product := range cases {
		t.Run(name, func(t *testing.T) {
			lookup := &stubLookup{products: map[[2]int64]*models.Product{{1, 1}: product}}
			lines := []CartLine{{ProductID: 1, VendorID: 1, Quantity: 1}}
			assert.False(t, ValidateCart(context.Background(), lines, lookup, testLogger()))
		})
	}
}

func TestValidateCartLookupErrorReturnsFalse(t *testing.T) {
	lookup := &stubLookup{err: errors.New("connection reset")}
	lines := []CartLine{{ProductID: 1, VendorID: 1, Quantity: 1}}

	assert.False(t, ValidateCart(context.Background(), lines, lookup, testLogger()))
}

func TestValidateCartEmptySequence(t *testing.T) {
	assert.True(t, ValidateCart(context.Background(), nil, &stubLookup{}, testLogger()))
}
