package repos

import (
	"fmt"

	"shopcore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Place decrements product stock and inserts the order row in one transaction.
// The guarded UPDATE keeps stock from going negative even under concurrent
// placements; if the guard misses, the whole placement rolls back with
// domain.ErrInsufficientStock.
func (r *OrderRepo) Place(customerID, productID int64, qty, totalPrice int) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?
	`, qty, productID, qty)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("product %d: %w", productID, domain.ErrInsufficientStock)
	}

	res, err = tx.Exec(`
		INSERT INTO orders(customer_id,product_id,quantity,total_price)
		VALUES(?,?,?,?)
	`, customerID, productID, qty, totalPrice)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func (r *OrderRepo) ByID(id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT id,customer_id,product_id,quantity,total_price FROM orders WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) All() ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `SELECT id,customer_id,product_id,quantity,total_price FROM orders ORDER BY id`)
	return out, err
}

// ByCustomer returns a customer's orders via the foreign key; orders stay
// one-directional, there is no back-reference on the customer row.
func (r *OrderRepo) ByCustomer(customerID int64) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `SELECT id,customer_id,product_id,quantity,total_price FROM orders WHERE customer_id=? ORDER BY id`, customerID)
	return out, err
}

// Delete removes the order row only; cancelled quantity is not restocked.
func (r *OrderRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
