package repos

import (
	"fmt"

	"shopcore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Insert stores a new customer and returns the assigned id. A duplicate email
// surfaces as domain.ErrDuplicateEmail.
func (r *CustomerRepo) Insert(c domain.Customer) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO customers(name,email,password_hash,phone_number,address)
		VALUES(?,?,?,?,?)
	`, c.Name, c.Email, c.Hash, c.Phone, c.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("customer %s: %w", c.Email, domain.ErrDuplicateEmail)
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *CustomerRepo) ByID(id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT id,name,email,password_hash,phone_number,address FROM customers WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) ByEmail(email string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `SELECT id,name,email,password_hash,phone_number,address FROM customers WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) All() ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := r.db.Select(&out, `SELECT id,name,email,password_hash,phone_number,address FROM customers ORDER BY id`)
	return out, err
}

// Update replaces the descriptive fields wholesale; the password hash is
// untouched. Returns the number of rows hit so callers can detect a missing id.
func (r *CustomerRepo) Update(id int64, name, email, phone, address string) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE customers SET name=?, email=?, phone_number=?, address=? WHERE id=?
	`, name, email, phone, address, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("customer %s: %w", email, domain.ErrDuplicateEmail)
		}
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CustomerRepo) UpdatePassword(id int64, hash string) (int64, error) {
	res, err := r.db.Exec(`UPDATE customers SET password_hash=? WHERE id=?`, hash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CustomerRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
