package models

// Vendor is seeded reference data; checkout never mutates it.
type Vendor struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}
