package models

// OrderItem links a product, quantity, order and delivery address. Items are
// created in a batch, one per cart line, at checkout time.
type OrderItem struct {
	ID                int64 `gorm:"column:id;primaryKey"`
	ProductID         int64 `gorm:"column:product_id;not null"`
	Quantity          int   `gorm:"column:quantity;not null"`
	OrderID           int64 `gorm:"column:order_id;not null"`
	DeliveryAddressID int64 `gorm:"column:delivery_address_id;not null"`
}
