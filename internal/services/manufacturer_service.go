package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopcore/internal/domain"
	"shopcore/internal/repos"
)

// ManufacturerService mirrors CustomerService over its own entity set;
// manufacturer emails are unique only among manufacturers.
type ManufacturerService struct {
	Manufacturers *repos.ManufacturerRepo
	Creds         Credentials
}

func NewManufacturerService(manufacturers *repos.ManufacturerRepo, creds Credentials) *ManufacturerService {
	return &ManufacturerService{Manufacturers: manufacturers, Creds: creds}
}

func (s *ManufacturerService) Create(name, email, password, phone, address string) (*domain.Manufacturer, error) {
	if _, err := s.Manufacturers.ByEmail(email); err == nil {
		return nil, fmt.Errorf("manufacturer %s: %w", email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := s.Creds.Hash(password)
	if err != nil {
		return nil, err
	}
	m := domain.Manufacturer{Name: name, Email: email, Hash: hash, Phone: phone, Address: address}
	id, err := s.Manufacturers.Insert(m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return &m, nil
}

func (s *ManufacturerService) Get(id int64) (*domain.Manufacturer, error) {
	m, err := s.Manufacturers.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("manufacturer %d: %w", id, domain.ErrNotFound)
	}
	return m, err
}

func (s *ManufacturerService) List() ([]domain.Manufacturer, error) {
	return s.Manufacturers.All()
}

func (s *ManufacturerService) Login(id int64, password string) (*domain.Manufacturer, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.Creds.Verify(password, m.Hash) {
		return nil, fmt.Errorf("manufacturer %d: %w", id, domain.ErrBadCreds)
	}
	return m, nil
}

func (s *ManufacturerService) ChangePassword(id int64, oldPassword, newPassword string) error {
	m, err := s.Get(id)
	if err != nil {
		return err
	}
	if !s.Creds.Verify(oldPassword, m.Hash) {
		return fmt.Errorf("manufacturer %d: %w", id, domain.ErrBadCreds)
	}
	hash, err := s.Creds.Hash(newPassword)
	if err != nil {
		return err
	}
	_, err = s.Manufacturers.UpdatePassword(id, hash)
	return err
}

func (s *ManufacturerService) Update(id int64, name, email, phone, address string) (*domain.Manufacturer, error) {
	n, err := s.Manufacturers.Update(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("manufacturer %d: %w", id, domain.ErrNotFound)
	}
	return s.Manufacturers.ByID(id)
}

func (s *ManufacturerService) Delete(id int64) error {
	n, err := s.Manufacturers.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("manufacturer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
