package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopcore/internal/domain"
	"shopcore/internal/repos"
)

type CustomerService struct {
	Customers *repos.CustomerRepo
	Creds     Credentials
}

func NewCustomerService(customers *repos.CustomerRepo, creds Credentials) *CustomerService {
	return &CustomerService{Customers: customers, Creds: creds}
}

// Create hashes the password and stores the account. The email pre-check gives
// a clean conflict before the insert; the unique index backs it up.
func (s *CustomerService) Create(name, email, password, phone, address string) (*domain.Customer, error) {
	if _, err := s.Customers.ByEmail(email); err == nil {
		return nil, fmt.Errorf("customer %s: %w", email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := s.Creds.Hash(password)
	if err != nil {
		return nil, err
	}
	c := domain.Customer{Name: name, Email: email, Hash: hash, Phone: phone, Address: address}
	id, err := s.Customers.Insert(c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

func (s *CustomerService) Get(id int64) (*domain.Customer, error) {
	c, err := s.Customers.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return c, err
}

func (s *CustomerService) List() ([]domain.Customer, error) {
	return s.Customers.All()
}

// Login authenticates by id and plaintext password and returns the profile.
func (s *CustomerService) Login(id int64, password string) (*domain.Customer, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.Creds.Verify(password, c.Hash) {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrBadCreds)
	}
	return c, nil
}

// ChangePassword verifies the old password before hashing and storing the new
// one. There is no new-vs-old check and no strength rule.
func (s *CustomerService) ChangePassword(id int64, oldPassword, newPassword string) error {
	c, err := s.Get(id)
	if err != nil {
		return err
	}
	if !s.Creds.Verify(oldPassword, c.Hash) {
		return fmt.Errorf("customer %d: %w", id, domain.ErrBadCreds)
	}
	hash, err := s.Creds.Hash(newPassword)
	if err != nil {
		return err
	}
	_, err = s.Customers.UpdatePassword(id, hash)
	return err
}

// Update replaces the descriptive fields wholesale; email uniqueness is not
// re-checked here, only the store's index stands in the way of a duplicate.
func (s *CustomerService) Update(id int64, name, email, phone, address string) (*domain.Customer, error) {
	n, err := s.Customers.Update(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return s.Customers.ByID(id)
}

func (s *CustomerService) Delete(id int64) error {
	n, err := s.Customers.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
