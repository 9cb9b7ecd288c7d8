package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/ledger"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// HareketHandler stok defteri uç noktaları (korumalı). Her yazma işlemi
// hareket kaydını ve malzeme miktarını tek transaction içinde günceller.
type HareketHandler struct {
	uc          *ledger.StokDefteriUseCase
	hareketRepo repository.HareketRepository
}

// NewHareketHandler handler'ı kurar.
func NewHareketHandler(uc *ledger.StokDefteriUseCase, hareketRepo repository.HareketRepository) *HareketHandler {
	return &HareketHandler{uc: uc, hareketRepo: hareketRepo}
}

func toHareketInput(in dto.HareketRequest) ledger.HareketInput {
	var tarih time.Time
	if in.Tarih != nil {
		tarih = *in.Tarih
	}
	return ledger.HareketInput{Tip: in.Tip, Miktar: in.Miktar, Not: in.Not, Tarih: tarih}
}

func toHareketResponse(h *entity.Hareket) dto.HareketResponse {
	return dto.HareketResponse{
		ID:        h.ID,
		MalzemeID: h.MalzemeID,
		Tip:       h.Tip,
		Miktar:    h.Miktar,
		Not:       h.Not,
		Tarih:     h.Tarih,
		CreatedAt: h.CreatedAt,
		CreatedBy: h.CreatedBy,
	}
}

// Create godoc
// @Summary      Stok hareketi ekle
// @Description  Giriş (IN) ya da çıkış (OUT). Stoğu negatife düşürecek çıkış reddedilir.
// @Tags         hareketler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Malzeme ID"
// @Param        body  body  dto.HareketRequest true  "Hareket bilgileri"
// @Success      201   {object}  dto.HareketResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id}/hareketler [post]
func (h *HareketHandler) Create(c *fiber.Ctx) error {
	var in dto.HareketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	hareket, err := h.uc.AddHareket(c.UserContext(), c.Params("id"), GetUserID(c), toHareketInput(in))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toHareketResponse(hareket))
}

// List godoc
// @Summary      Malzemenin hareket geçmişi
// @Description  En yeniden eskiye sayfalı liste; yanıt güncel miktarı da taşır.
// @Tags         hareketler
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Malzeme ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.HareketListResponse
// @Router       /api/malzemeler/{id}/hareketler [get]
func (h *HareketHandler) List(c *fiber.Ctx) error {
	malzemeID := c.Params("id")
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	miktar, err := h.uc.CurrentMiktar(malzemeID)
	if err != nil {
		return hataYaniti(c, err)
	}
	hareketler, err := h.hareketRepo.ListByMalzeme(malzemeID, page.Limit, page.Offset)
	if err != nil {
		return hataYaniti(c, err)
	}
	items := make([]dto.HareketResponse, 0, len(hareketler))
	for _, hr := range hareketler {
		items = append(items, toHareketResponse(hr))
	}
	return c.JSON(dto.HareketListResponse{
		Miktar: miktar,
		Items:  items,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Update godoc
// @Summary      Hareket düzenle
// @Description  Miktar/tip değişikliği net fark olarak stoğa uygulanır; sonuç negatifse reddedilir.
// @Tags         hareketler
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string             true  "Malzeme ID"
// @Param        hareketId  path  string             true  "Hareket ID"
// @Param        body       body  dto.HareketRequest true  "Yeni değerler"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id}/hareketler/{hareketId} [put]
func (h *HareketHandler) Update(c *fiber.Ctx) error {
	var in dto.HareketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	if err := h.uc.EditHareket(c.UserContext(), c.Params("id"), c.Params("hareketId"), toHareketInput(in)); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Hareket sil
// @Description  Silme negatif stok kontrolüne takılmaz; stok eksiye düşerse uyarı loglanır.
// @Tags         hareketler
// @Security     Bearer
// @Param        id         path  string  true  "Malzeme ID"
// @Param        hareketId  path  string  true  "Hareket ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/malzemeler/{id}/hareketler/{hareketId} [delete]
func (h *HareketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteHareket(c.UserContext(), c.Params("id"), c.Params("hareketId")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Recompute godoc
// @Summary      Miktarı geçmişten yeniden hesapla
// @Description  Bakım işlemi: açılış miktarı + hareket toplamından güncel miktarı onarır.
// @Tags         hareketler
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Malzeme ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/malzemeler/{id}/yeniden-hesapla [post]
func (h *HareketHandler) Recompute(c *fiber.Ctx) error {
	miktar, err := h.uc.RecomputeMiktar(c.UserContext(), c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(fiber.Map{"miktar": miktar})
}
