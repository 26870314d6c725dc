package checkout

// CartLine is one requested product in a checkout submission. Price is kept
// as the client sent it: the total calculation skips non-numeric prices
// rather than rejecting the line.
type CartLine struct {
	ProductID int64
	VendorID  int64
	Quantity  int
	Price     any
	Address   DeliveryAddress
}

// DeliveryAddress is the destination for a single cart line.
type DeliveryAddress struct {
	Name    string
	Line1   string
	Line2   *string
	City    string
	State   string
	ZipCode string
	Country string
}

// Input is a parsed checkout submission. Fees ride along with the request
// and are required to be present, but they are not folded into the order
// total; vendors bill them separately.
type Input struct {
	CustomerName string
	Cart         []CartLine
	Fees         map[string]any
}

// Receipt reports what a successful checkout persisted.
type Receipt struct {
	OrderID    int64
	TotalCents int64
	ItemCount  int
}
