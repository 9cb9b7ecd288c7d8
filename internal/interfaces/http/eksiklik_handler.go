package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// EksiklikHandler eksiklik takibi uç noktaları (korumalı).
type EksiklikHandler struct {
	uc *usecase.EksiklikUseCase
}

// NewEksiklikHandler handler'ı kurar.
func NewEksiklikHandler(uc *usecase.EksiklikUseCase) *EksiklikHandler {
	return &EksiklikHandler{uc: uc}
}

// Create godoc
// @Summary      Eksiklik kaydı aç
// @Tags         eksiklikler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Blok ID"
// @Param        body  body  dto.CreateEksiklikRequest  true  "Eksiklik bilgileri"
// @Success      201   {object}  dto.EksiklikResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/eksiklikler [post]
func (h *EksiklikHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEksiklikRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateEksiklik(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Eksiklik getir
// @Tags         eksiklikler
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Eksiklik ID"
// @Success      200  {object}  dto.EksiklikResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eksiklikler/{id} [get]
func (h *EksiklikHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetEksiklik(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Blok eksikliklerini listele
// @Tags         eksiklikler
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Blok ID"
// @Param        durum   query  string  false  "ACIK | DEVAM | TAMAMLANDI"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.EksiklikListResponse
// @Router       /api/bloklar/{id}/eksiklikler [get]
func (h *EksiklikHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListEksiklikler(c.Params("id"), c.Query("durum"), page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Eksiklik güncelle
// @Tags         eksiklikler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Eksiklik ID"
// @Param        body  body  dto.UpdateEksiklikRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.EksiklikResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/eksiklikler/{id} [put]
func (h *EksiklikHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEksiklikRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateEksiklik(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eksiklik sil
// @Tags         eksiklikler
// @Security     Bearer
// @Param        id  path  string  true  "Eksiklik ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eksiklikler/{id} [delete]
func (h *EksiklikHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteEksiklik(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
