package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	apphakedis "github.com/santiyepro/santiye-api/internal/application/hakedis"
)

// HakedisHandler hakediş uç noktaları (korumalı).
type HakedisHandler struct {
	uc *apphakedis.HakedisUseCase
}

// NewHakedisHandler handler'ı kurar.
func NewHakedisHandler(uc *apphakedis.HakedisUseCase) *HakedisHandler {
	return &HakedisHandler{uc: uc}
}

// Create godoc
// @Summary      Hakediş oluştur
// @Description  Numara şantiye içinde ardışık verilir; silinen numara geri kullanılmaz.
// @Tags         hakedisler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Şantiye ID"
// @Param        body  body  dto.CreateHakedisRequest  true  "Hakediş bilgileri"
// @Success      201   {object}  dto.HakedisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id}/hakedisler [post]
func (h *HakedisHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHakedisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateHakedis(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Hakediş getir
// @Tags         hakedisler
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Hakediş ID"
// @Success      200  {object}  dto.HakedisResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hakedisler/{id} [get]
func (h *HakedisHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetHakedis(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiye hakedişlerini listele
// @Tags         hakedisler
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Şantiye ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.HakedisListResponse
// @Router       /api/santiyeler/{id}/hakedisler [get]
func (h *HakedisHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListHakedisler(c.Params("id"), page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Hakediş güncelle
// @Description  Kalemler tam liste olarak değiştirilir; numara ve dönem değişmez.
// @Tags         hakedisler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Hakediş ID"
// @Param        body  body  dto.UpdateHakedisRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.HakedisResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hakedisler/{id} [put]
func (h *HakedisHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHakedisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateHakedis(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hakediş sil
// @Tags         hakedisler
// @Security     Bearer
// @Param        id  path  string  true  "Hakediş ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hakedisler/{id} [delete]
func (h *HakedisHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteHakedis(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Hakediş PDF raporu
// @Tags         hakedisler
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Hakediş ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hakedisler/{id}/pdf [get]
func (h *HakedisHandler) PDF(c *fiber.Ctx) error {
	raw, isim, err := h.uc.GeneratePDF(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+isim+`"`)
	return c.Send(raw)
}
