package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

type createCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone_number"`
	Address  string `json:"address"`
}

type loginRequest struct {
	CustomerID int64  `json:"customer_id"`
	Password   string `json:"password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type updateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Address string `json:"address"`
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "email")
	}
	if !validate.Password(req.Password) {
		return badRequest(c, "password")
	}

	cust, err := h.Customers.Create(name, email, req.Password, req.Phone, req.Address)
	if err != nil {
		return fail(c, "customer.create", err)
	}
	applog.Audit(c, "customer.create", map[string]any{"customer_id": cust.ID})
	return c.JSON(cust)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.Customers.List()
	if err != nil {
		return fail(c, "customer.list", err)
	}
	return c.JSON(out)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	cust, err := h.Customers.Get(id)
	if err != nil {
		return fail(c, "customer.get", err)
	}
	return c.JSON(cust)
}

// Login returns the profile for a valid (id, password) pair. Credential
// failures log a security line but reply with the same shape as other errors.
func (h *CustomerHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	cust, err := h.Customers.Login(req.CustomerID, req.Password)
	if err != nil {
		applog.Security(c, "customer.login.fail", map[string]any{"customer_id": req.CustomerID})
		return fail(c, "customer.login", err)
	}
	applog.Audit(c, "customer.login", map[string]any{"customer_id": cust.ID})
	return c.JSON(cust)
}

func (h *CustomerHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	if !validate.Password(req.NewPassword) {
		return badRequest(c, "new_password")
	}
	if err := h.Customers.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		applog.Security(c, "customer.password.fail", map[string]any{"customer_id": id})
		return fail(c, "customer.password", err)
	}
	applog.Audit(c, "customer.password", map[string]any{"customer_id": id})
	return c.JSON(fiber.Map{"detail": "Password updated successfully."})
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	var req updateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badRequest(c, "name")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "email")
	}
	cust, err := h.Customers.Update(id, name, email, req.Phone, req.Address)
	if err != nil {
		return fail(c, "customer.update", err)
	}
	applog.Audit(c, "customer.update", map[string]any{"customer_id": id})
	return c.JSON(fiber.Map{"detail": "Customer updated successfully.", "customer": cust})
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	if err := h.Customers.Delete(id); err != nil {
		return fail(c, "customer.delete", err)
	}
	applog.Audit(c, "customer.delete", map[string]any{"customer_id": id})
	return c.JSON(fiber.Map{"detail": "Customer deleted successfully."})
}
