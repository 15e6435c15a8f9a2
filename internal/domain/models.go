package domain

// Customer is an account that places orders. Hash is the bcrypt digest of the
// password; it never serializes into responses.
type Customer struct {
	ID      int64  `db:"id" json:"customer_id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Hash    string `db:"password_hash" json:"-"`
	Phone   string `db:"phone_number" json:"phone_number"`
	Address string `db:"address" json:"address"`
}

type Manufacturer struct {
	ID      int64  `db:"id" json:"manufacturer_id"`
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Hash    string `db:"password_hash" json:"-"`
	Phone   string `db:"phone_number" json:"phone_number"`
	Address string `db:"address" json:"address"`
}

// Product prices are integer amounts. MRP is the list price before discount;
// CostPrice is informational and never enters pricing.
type Product struct {
	ID          int64  `db:"id" json:"product_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Stock       int    `db:"stock" json:"stock"`
	MRP         int    `db:"mrp" json:"MRP"`
	CostPrice   int    `db:"cost_price" json:"costPrice"`
	Discount    int    `db:"discount" json:"discount"`
}

// Order references customer and product by id only; TotalPrice is fixed at
// placement and never recomputed.
type Order struct {
	ID         int64 `db:"id" json:"order_id"`
	CustomerID int64 `db:"customer_id" json:"customer_id"`
	ProductID  int64 `db:"product_id" json:"product_id"`
	Quantity   int   `db:"quantity" json:"quantity"`
	TotalPrice int   `db:"total_price" json:"total_price"`
}
