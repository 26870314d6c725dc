package models

// VendorFee is the per-vendor charge schedule, all amounts in integer cents.
// The schema permits duplicate rows per vendor; vendor_id is the effective key.
type VendorFee struct {
	ID               int64 `gorm:"column:id;primaryKey"`
	VendorID         int64 `gorm:"column:vendor_id;not null"`
	StandardDelivery int64 `gorm:"column:standard_delivery;not null"`
	ProcessingFee    int64 `gorm:"column:processing_fee;not null"`
	ServiceFee       int64 `gorm:"column:service_fee;not null"`
}
