package repos

import (
	"shopcore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Insert(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO products(name,description,stock,mrp,cost_price,discount)
		VALUES(?,?,?,?,?,?)
	`, p.Name, p.Description, p.Stock, p.MRP, p.CostPrice, p.Discount)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) ByID(id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id,name,description,stock,mrp,cost_price,discount FROM products WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) All() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT id,name,description,stock,mrp,cost_price,discount FROM products ORDER BY id`)
	return out, err
}

// Update is a full replace of the mutable fields, including stock; the order
// workflow is the only other writer of stock.
func (r *ProductRepo) Update(id int64, p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE products SET name=?, description=?, stock=?, mrp=?, cost_price=?, discount=? WHERE id=?
	`, p.Name, p.Description, p.Stock, p.MRP, p.CostPrice, p.Discount, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
