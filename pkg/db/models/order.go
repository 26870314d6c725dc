package models

// Order is the persisted record of a completed checkout. Total is integer
// cents and immutable once written.
type Order struct {
	ID           int64       `gorm:"column:id;primaryKey"`
	CustomerName string      `gorm:"column:customer_name;not null"`
	Total        int64       `gorm:"column:total;not null"`
	Items        []OrderItem `gorm:"foreignKey:OrderID"`
}
