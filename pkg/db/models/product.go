package models

// Product is a vendor's catalog listing. Price is integer cents.
type Product struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Price    int64  `gorm:"column:price;not null"`
	VendorID *int64 `gorm:"column:vendor_id"`
}
