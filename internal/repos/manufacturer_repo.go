package repos

import (
	"fmt"

	"shopcore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ManufacturerRepo struct{ db *sqlx.DB }

func NewManufacturerRepo(db *sqlx.DB) *ManufacturerRepo { return &ManufacturerRepo{db: db} }

func (r *ManufacturerRepo) Insert(m domain.Manufacturer) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO manufacturers(name,email,password_hash,phone_number,address)
		VALUES(?,?,?,?,?)
	`, m.Name, m.Email, m.Hash, m.Phone, m.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("manufacturer %s: %w", m.Email, domain.ErrDuplicateEmail)
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ManufacturerRepo) ByID(id int64) (*domain.Manufacturer, error) {
	var m domain.Manufacturer
	err := r.db.Get(&m, `SELECT id,name,email,password_hash,phone_number,address FROM manufacturers WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepo) ByEmail(email string) (*domain.Manufacturer, error) {
	var m domain.Manufacturer
	err := r.db.Get(&m, `SELECT id,name,email,password_hash,phone_number,address FROM manufacturers WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepo) All() ([]domain.Manufacturer, error) {
	out := []domain.Manufacturer{}
	err := r.db.Select(&out, `SELECT id,name,email,password_hash,phone_number,address FROM manufacturers ORDER BY id`)
	return out, err
}

func (r *ManufacturerRepo) Update(id int64, name, email, phone, address string) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE manufacturers SET name=?, email=?, phone_number=?, address=? WHERE id=?
	`, name, email, phone, address, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("manufacturer %s: %w", email, domain.ErrDuplicateEmail)
		}
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ManufacturerRepo) UpdatePassword(id int64, hash string) (int64, error) {
	res, err := r.db.Exec(`UPDATE manufacturers SET password_hash=? WHERE id=?`, hash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ManufacturerRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM manufacturers WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
