package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopcore/internal/domain"
	"shopcore/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Create(p domain.Product) (*domain.Product, error) {
	id, err := s.Prods.Insert(p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (s *CatalogService) Get(id int64) (*domain.Product, error) {
	p, err := s.Prods.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return p, err
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.All()
}

func (s *CatalogService) Update(id int64, p domain.Product) (*domain.Product, error) {
	n, err := s.Prods.Update(id, p)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return s.Prods.ByID(id)
}

func (s *CatalogService) Delete(id int64) error {
	n, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
