package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopcore/internal/domain"
	"shopcore/internal/repos"
)

type OrderService struct {
	Customers *repos.CustomerRepo
	Prods     *repos.ProductRepo
	Orders    *repos.OrderRepo
}

func NewOrderService(customers *repos.CustomerRepo, prods *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Customers: customers, Prods: prods, Orders: orders}
}

// Place validates the referenced customer and product, pre-checks stock,
// fixes the total at (MRP - discount) * qty, and applies the decrement plus
// order insert as one transaction.
func (s *OrderService) Place(customerID, productID int64, qty int) (int64, error) {
	if _, err := s.Customers.ByID(customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("customer %d does not exist: %w", customerID, domain.ErrNotFound)
		}
		return 0, err
	}

	p, err := s.Prods.ByID(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("product %d does not exist: %w", productID, domain.ErrNotFound)
		}
		return 0, err
	}

	if p.Stock < qty {
		return 0, fmt.Errorf("product %d (need %d, have %d): %w", productID, qty, p.Stock, domain.ErrInsufficientStock)
	}

	totalPrice := (p.MRP - p.Discount) * qty

	return s.Orders.Place(customerID, productID, qty, totalPrice)
}

// Cancel deletes the order row. Stock is deliberately not restored.
func (s *OrderService) Cancel(orderID int64) error {
	n, err := s.Orders.Delete(orderID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func (s *OrderService) Get(orderID int64) (*domain.Order, error) {
	o, err := s.Orders.ByID(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return o, err
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.All()
}
