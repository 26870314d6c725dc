package checkout

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/trailmarket/checkout-backend/pkg/config"
	"github.com/trailmarket/checkout-backend/pkg/db"
	"github.com/trailmarket/checkout-backend/pkg/db/models"
)

func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().AutoMigrate(
		&models.Vendor{},
		&models.Product{},
		&models.VendorFee{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
	))
	return client
}

func seedCatalog(t *testing.T, client *db.Client) {
	t.Helper()

	vendors := []models.Vendor{
		{ID: 1, Name: "Aquatic Adventures"},
		{ID: 2, Name: "Mr Bike"},
	}
	require.NoError(t, client.DB().Create(&vendors).Error)

	products := []models.Product{
		{ID: 1, Name: "Floaties", Price: 5000, VendorID: vendorRef(1)},
		{ID: 2, Name: "Sunscreen - spray", Price: 1000, VendorID: vendorRef(1)},
		{ID: 3, Name: "Mountain Bike", Price: 75000, VendorID: vendorRef(2)},
	}
	require.NoError(t, client.DB().Create(&products).Error)
}
