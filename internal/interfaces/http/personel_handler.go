package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// PersonelHandler personel ve puantaj uç noktaları (korumalı).
type PersonelHandler struct {
	uc *usecase.PersonelUseCase
}

// NewPersonelHandler handler'ı kurar.
func NewPersonelHandler(uc *usecase.PersonelUseCase) *PersonelHandler {
	return &PersonelHandler{uc: uc}
}

// Create godoc
// @Summary      Personel kaydet
// @Tags         personeller
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Şantiye ID"
// @Param        body  body  dto.CreatePersonelRequest  true  "Personel bilgileri"
// @Success      201   {object}  dto.PersonelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id}/personeller [post]
func (h *PersonelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreatePersonel(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Personel getir
// @Tags         personeller
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Personel ID"
// @Success      200  {object}  dto.PersonelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personeller/{id} [get]
func (h *PersonelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPersonel(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiye personelini listele
// @Tags         personeller
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Şantiye ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PersonelListResponse
// @Router       /api/santiyeler/{id}/personeller [get]
func (h *PersonelHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListPersoneller(c.Params("id"), page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Personel güncelle
// @Tags         personeller
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Personel ID"
// @Param        body  body  dto.UpdatePersonelRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.PersonelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/personeller/{id} [put]
func (h *PersonelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdatePersonel(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Personel sil
// @Tags         personeller
// @Security     Bearer
// @Param        id  path  string  true  "Personel ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/personeller/{id} [delete]
func (h *PersonelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePersonel(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// KaydetPuantaj godoc
// @Summary      Günlük puantaj yaz
// @Description  Aynı güne ikinci kayıt öncekini günceller (personel + tarih tekil).
// @Tags         puantaj
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Personel ID"
// @Param        body  body  dto.PuantajRequest  true  "Gün kaydı"
// @Success      200   {object}  dto.PuantajResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/personeller/{id}/puantaj [post]
func (h *PersonelHandler) KaydetPuantaj(c *fiber.Ctx) error {
	var in dto.PuantajRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.KaydetPuantaj(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// AylikPuantaj godoc
// @Summary      Aylık puantaj raporu
// @Tags         puantaj
// @Security     Bearer
// @Produce      json
// @Param        id   path   string  true  "Personel ID"
// @Param        yil  query  int     true  "Yıl"
// @Param        ay   query  int     true  "Ay (1-12)"
// @Success      200  {object}  dto.PuantajAyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/personeller/{id}/puantaj [get]
func (h *PersonelHandler) AylikPuantaj(c *fiber.Ctx) error {
	out, err := h.uc.AylikPuantaj(c.Params("id"), c.QueryInt("yil", 0), c.QueryInt("ay", 0))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}
