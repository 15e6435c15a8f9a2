package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type placeOrderRequest struct {
	CustomerID int64 `json:"customer_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	if !validate.Qty(req.Quantity) {
		return badRequest(c, "quantity")
	}

	orderID, err := h.Orders.Place(req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{
			"customer_id": req.CustomerID,
			"product_id":  req.ProductID,
			"quantity":    req.Quantity,
			"error":       err.Error(),
		})
		return fail(c, "order.place", err)
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})
	return c.JSON(fiber.Map{"detail": "Order created successfully.", "order_id": orderID})
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	if err := h.Orders.Cancel(id); err != nil {
		return fail(c, "order.cancel", err)
	}
	applog.Audit(c, "order.cancel", map[string]any{"order_id": id})
	return c.JSON(fiber.Map{"detail": "Order cancelled successfully."})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	o, err := h.Orders.Get(id)
	if err != nil {
		return fail(c, "order.get", err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.Orders.List()
	if err != nil {
		return fail(c, "order.list", err)
	}
	return c.JSON(out)
}
