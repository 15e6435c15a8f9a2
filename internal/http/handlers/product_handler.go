package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/internal/domain"
	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// productRequest covers create and update; a missing discount decodes to 0.
type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
	MRP         int    `json:"MRP"`
	CostPrice   int    `json:"costPrice"`
	Discount    int    `json:"discount"`
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name")
	}
	if req.Stock < 0 {
		return badRequest(c, "stock")
	}

	p, err := h.Catalog.Create(domain.Product{
		Name:        name,
		Description: req.Description,
		Stock:       req.Stock,
		MRP:         req.MRP,
		CostPrice:   req.CostPrice,
		Discount:    req.Discount,
	})
	if err != nil {
		return fail(c, "product.create", err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.List()
	if err != nil {
		return fail(c, "product.list", err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return fail(c, "product.get", err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name")
	}
	if req.Stock < 0 {
		return badRequest(c, "stock")
	}

	p, err := h.Catalog.Update(id, domain.Product{
		Name:        name,
		Description: req.Description,
		Stock:       req.Stock,
		MRP:         req.MRP,
		CostPrice:   req.CostPrice,
		Discount:    req.Discount,
	})
	if err != nil {
		return fail(c, "product.update", err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"detail": "Product updated successfully.", "product": p})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	if err := h.Catalog.Delete(id); err != nil {
		return fail(c, "product.delete", err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"detail": "Product deleted successfully."})
}
