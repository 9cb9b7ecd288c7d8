package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// MalzemeHandler malzeme kartı uç noktaları (korumalı).
type MalzemeHandler struct {
	uc *usecase.MalzemeUseCase
}

// NewMalzemeHandler handler'ı kurar.
func NewMalzemeHandler(uc *usecase.MalzemeUseCase) *MalzemeHandler {
	return &MalzemeHandler{uc: uc}
}

// Create godoc
// @Summary      Malzeme kartı oluştur
// @Tags         malzemeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Depo ID"
// @Param        body  body  dto.CreateMalzemeRequest  true  "Malzeme bilgileri"
// @Success      201   {object}  dto.MalzemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depolar/{id}/malzemeler [post]
func (h *MalzemeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMalzemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateMalzeme(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Malzeme getir
// @Tags         malzemeler
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Malzeme ID"
// @Success      200  {object}  dto.MalzemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id} [get]
func (h *MalzemeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetMalzeme(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Deponun malzemelerini listele
// @Tags         malzemeler
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Depo ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MalzemeListResponse
// @Router       /api/depolar/{id}/malzemeler [get]
func (h *MalzemeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListMalzemeler(c.Params("id"), page)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Malzeme kartını güncelle
// @Description  Miktar bu uçtan değiştirilemez; stok yalnızca hareketlerle değişir.
// @Tags         malzemeler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Malzeme ID"
// @Param        body  body  dto.UpdateMalzemeRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.MalzemeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id} [put]
func (h *MalzemeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMalzemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateMalzeme(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Malzeme kartını sil
// @Tags         malzemeler
// @Security     Bearer
// @Param        id  path  string  true  "Malzeme ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id} [delete]
func (h *MalzemeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMalzeme(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListKritik godoc
// @Summary      Şantiyenin kritik stok raporu
// @Description  Miktarı kritik eşiğinde ya da altında olan malzemeler. Sonuç kısa süreli önbellekten gelebilir.
// @Tags         malzemeler
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Şantiye ID"
// @Success      200  {array}  dto.MalzemeResponse
// @Router       /api/santiyeler/{id}/kritik-stok [get]
func (h *MalzemeHandler) ListKritik(c *fiber.Ctx) error {
	out, err := h.uc.ListKritik(c.UserContext(), c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}
