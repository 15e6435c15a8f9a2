package handlers

import (
	"github.com/jmoiron/sqlx"

	"shopcore/internal/repos"
	"shopcore/internal/services"
)

type Deps struct {
	CustomerHandler     *CustomerHandler
	ManufacturerHandler *ManufacturerHandler
	ProductHandler      *ProductHandler
	OrderHandler        *OrderHandler
}

// NewDeps wires repos and services for one store handle and one credential
// service; no package-level state.
func NewDeps(db *sqlx.DB, creds services.Credentials) *Deps {
	custRepo := repos.NewCustomerRepo(db)
	manuRepo := repos.NewManufacturerRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	custSvc := services.NewCustomerService(custRepo, creds)
	manuSvc := services.NewManufacturerService(manuRepo, creds)
	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(custRepo, prodRepo, orderRepo)

	return &Deps{
		CustomerHandler:     &CustomerHandler{Customers: custSvc},
		ManufacturerHandler: &ManufacturerHandler{Manufacturers: manuSvc},
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		OrderHandler:        &OrderHandler{Orders: orderSvc},
	}
}
