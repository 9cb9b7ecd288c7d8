package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// DepoHandler depo uç noktaları (korumalı).
type DepoHandler struct {
	uc *usecase.DepoUseCase
}

// NewDepoHandler handler'ı kurar.
func NewDepoHandler(uc *usecase.DepoUseCase) *DepoHandler {
	return &DepoHandler{uc: uc}
}

// Create godoc
// @Summary      Depo oluştur
// @Tags         depolar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Şantiye ID"
// @Param        body  body  dto.CreateDepoRequest  true  "Depo bilgileri"
// @Success      201   {object}  dto.DepoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id}/depolar [post]
func (h *DepoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateDepo(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Depo getir
// @Tags         depolar
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Depo ID"
// @Success      200  {object}  dto.DepoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depolar/{id} [get]
func (h *DepoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDepo(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiyenin depolarını listele
// @Tags         depolar
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Şantiye ID"
// @Success      200  {array}  dto.DepoResponse
// @Router       /api/santiyeler/{id}/depolar [get]
func (h *DepoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListDepolar(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Depo güncelle
// @Tags         depolar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Depo ID"
// @Param        body  body  dto.UpdateDepoRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.DepoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depolar/{id} [put]
func (h *DepoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateDepo(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Depo sil
// @Tags         depolar
// @Security     Bearer
// @Param        id  path  string  true  "Depo ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depolar/{id} [delete]
func (h *DepoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteDepo(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
