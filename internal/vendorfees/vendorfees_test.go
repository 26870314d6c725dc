package vendorfees

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/trailmarket/checkout-backend/pkg/config"
	"github.com/trailmarket/checkout-backend/pkg/db"
	"github.com/trailmarket/checkout-backend/pkg/db/models"
	pkgerrors "github.com/trailmarket/checkout-backend/pkg/errors"
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

	require.NoError(t, client.DB().AutoMigrate(&models.Vendor{}, &models.VendorFee{}))
	return client
}

func TestGetByVendor(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.DB().Create(&models.Vendor{ID: 1, Name: "Aquatic Adventures"}).Error)
	require.NoError(t, client.DB().Create(&models.VendorFee{
		ID: 1, VendorID: 1, StandardDelivery: 500, ProcessingFee: 100, ServiceFee: 150,
	}).Error)

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	fee, err := svc.GetByVendor(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(500), fee.StandardDelivery)
	require.Equal(t, int64(100), fee.ProcessingFee)
	require.Equal(t, int64(150), fee.ServiceFee)
}

func TestGetByVendorFirstRowWinsOnDuplicates(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.DB().Create(&models.Vendor{ID: 1, Name: "Aquatic Adventures"}).Error)
	fees := []models.VendorFee{
		{ID: 1, VendorID: 1, StandardDelivery: 500, ProcessingFee: 100, ServiceFee: 150},
		{ID: 2, VendorID: 1, StandardDelivery: 900, ProcessingFee: 900, ServiceFee: 900},
	}
	require.NoError(t, client.DB().Create(&fees).Error)

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	fee, err := svc.GetByVendor(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), fee.ID)
}

func TestGetByVendorNotFound(t *testing.T) {
	svc, err := NewService(NewRepository(newTestClient(t).DB()))
	require.NoError(t, err)

	_, err = svc.GetByVendor(context.Background(), 42)
	var coded *pkgerrors.Error
	require.True(t, errors.As(err, &coded))
	require.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}
