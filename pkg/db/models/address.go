package models

// Address is a delivery address created once per order item at checkout and
// never updated afterward.
type Address struct {
	ID      int64   `gorm:"column:id;primaryKey"`
	Name    string  `gorm:"column:delivery_name;not null"`
	Line1   string  `gorm:"column:delivery_address_line_1;not null"`
	Line2   *string `gorm:"column:delivery_address_line_2"`
	City    string  `gorm:"column:delivery_address_city;not null"`
	State   string  `gorm:"column:delivery_address_state;not null"`
	ZipCode string  `gorm:"column:delivery_address_zip_code;not null"`
	Country string  `gorm:"column:delivery_address_country;not null"`
}

func (Address) TableName() string { return "addresses" }
