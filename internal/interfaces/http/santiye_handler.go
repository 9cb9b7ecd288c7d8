package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// SantiyeHandler şantiye uç noktaları (korumalı).
type SantiyeHandler struct {
	uc *usecase.SantiyeUseCase
}

// NewSantiyeHandler handler'ı kurar.
func NewSantiyeHandler(uc *usecase.SantiyeUseCase) *SantiyeHandler {
	return &SantiyeHandler{uc: uc}
}

// Create godoc
// @Summary      Şantiye oluştur
// @Tags         santiyeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSantiyeRequest  true  "Şantiye bilgileri"
// @Success      201   {object}  dto.SantiyeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler [post]
func (h *SantiyeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSantiyeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateSantiye(in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Şantiye getir
// @Tags         santiyeler
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Şantiye ID"
// @Success      200  {object}  dto.SantiyeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id} [get]
func (h *SantiyeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSantiye(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiyeleri listele
// @Tags         santiyeler
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SantiyeListResponse
// @Router       /api/santiyeler [get]
func (h *SantiyeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListSantiyeler(page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Şantiye güncelle
// @Tags         santiyeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Şantiye ID"
// @Param        body  body  dto.UpdateSantiyeRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.SantiyeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id} [put]
func (h *SantiyeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSantiyeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateSantiye(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Şantiye sil
// @Tags         santiyeler
// @Security     Bearer
// @Param        id  path  string  true  "Şantiye ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id} [delete]
func (h *SantiyeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSantiye(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
