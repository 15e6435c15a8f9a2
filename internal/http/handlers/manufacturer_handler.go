package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopcore/internal/log"
	"shopcore/internal/services"
	"shopcore/internal/validate"
)

type ManufacturerHandler struct {
	Manufacturers *services.ManufacturerService
}

type createManufacturerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone_number"`
	Address  string `json:"address"`
}

type manufacturerLoginRequest struct {
	ManufacturerID int64  `json:"manufacturer_id"`
	Password       string `json:"password"`
}

type updateManufacturerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Address string `json:"address"`
}

func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var req createManufacturerRequest
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

	m, err := h.Manufacturers.Create(name, email, req.Password, req.Phone, req.Address)
	if err != nil {
		return fail(c, "manufacturer.create", err)
	}
	applog.Audit(c, "manufacturer.create", map[string]any{"manufacturer_id": m.ID})
	return c.JSON(m)
}

func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	out, err := h.Manufacturers.List()
	if err != nil {
		return fail(c, "manufacturer.list", err)
	}
	return c.JSON(out)
}

func (h *ManufacturerHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	m, err := h.Manufacturers.Get(id)
	if err != nil {
		return fail(c, "manufacturer.get", err)
	}
	return c.JSON(m)
}

func (h *ManufacturerHandler) Login(c *fiber.Ctx) error {
	var req manufacturerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body")
	}
	m, err := h.Manufacturers.Login(req.ManufacturerID, req.Password)
	if err != nil {
		applog.Security(c, "manufacturer.login.fail", map[string]any{"manufacturer_id": req.ManufacturerID})
		return fail(c, "manufacturer.login", err)
	}
	applog.Audit(c, "manufacturer.login", map[string]any{"manufacturer_id": m.ID})
	return c.JSON(m)
}

func (h *ManufacturerHandler) ChangePassword(c *fiber.Ctx) error {
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
	if err := h.Manufacturers.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		applog.Security(c, "manufacturer.password.fail", map[string]any{"manufacturer_id": id})
		return fail(c, "manufacturer.password", err)
	}
	applog.Audit(c, "manufacturer.password", map[string]any{"manufacturer_id": id})
	return c.JSON(fiber.Map{"detail": "Password updated successfully."})
}

func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	var req updateManufacturerRequest
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
	m, err := h.Manufacturers.Update(id, name, email, req.Phone, req.Address)
	if err != nil {
		return fail(c, "manufacturer.update", err)
	}
	applog.Audit(c, "manufacturer.update", map[string]any{"manufacturer_id": id})
	return c.JSON(fiber.Map{"detail": "Manufacturer updated successfully.", "manufacturer": m})
}

func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id")
	}
	if err := h.Manufacturers.Delete(id); err != nil {
		return fail(c, "manufacturer.delete", err)
	}
	applog.Audit(c, "manufacturer.delete", map[string]any{"manufacturer_id": id})
	return c.JSON(fiber.Map{"detail": "Manufacturer deleted successfully."})
}
