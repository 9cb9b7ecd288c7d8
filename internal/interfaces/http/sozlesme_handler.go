package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// SozlesmeHandler sözleşme uç noktaları (korumalı).
type SozlesmeHandler struct {
	uc *usecase.SozlesmeUseCase
}

// NewSozlesmeHandler handler'ı kurar.
func NewSozlesmeHandler(uc *usecase.SozlesmeUseCase) *SozlesmeHandler {
	return &SozlesmeHandler{uc: uc}
}

// Create godoc
// @Summary      Sözleşme ekle
// @Tags         sozlesmeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Şantiye ID"
// @Param        body  body  dto.CreateSozlesmeRequest  true  "Sözleşme bilgileri"
// @Success      201   {object}  dto.SozlesmeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id}/sozlesmeler [post]
func (h *SozlesmeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSozlesmeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateSozlesme(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Sözleşme getir
// @Tags         sozlesmeler
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Sözleşme ID"
// @Success      200  {object}  dto.SozlesmeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sozlesmeler/{id} [get]
func (h *SozlesmeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSozlesme(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiye sözleşmelerini listele
// @Tags         sozlesmeler
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Şantiye ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.SozlesmeListResponse
// @Router       /api/santiyeler/{id}/sozlesmeler [get]
func (h *SozlesmeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListSozlesmeler(c.Params("id"), page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Sözleşme güncelle
// @Tags         sozlesmeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Sözleşme ID"
// @Param        body  body  dto.UpdateSozlesmeRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.SozlesmeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sozlesmeler/{id} [put]
func (h *SozlesmeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSozlesmeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateSozlesme(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Sözleşme sil
// @Tags         sozlesmeler
// @Security     Bearer
// @Param        id  path  string  true  "Sözleşme ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sozlesmeler/{id} [delete]
func (h *SozlesmeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSozlesme(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
