package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/application/structure"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
)

// BlokHandler blok uç noktaları: üst veri CRUD + yapı editörü (korumalı).
// Yapı editörü operasyonları blok başına tek düzenleme oturumu üzerinde çalışır;
// değişiklikler kaydet çağrısına kadar bellekte kalır.
type BlokHandler struct {
	uc      *usecase.BlokUseCase
	manager *structure.Manager
}

// NewBlokHandler handler'ı kurar.
func NewBlokHandler(uc *usecase.BlokUseCase, manager *structure.Manager) *BlokHandler {
	return &BlokHandler{uc: uc, manager: manager}
}

// Create godoc
// @Summary      Blok oluştur
// @Tags         bloklar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Şantiye ID"
// @Param        body  body  dto.CreateBlokRequest  true  "Blok bilgileri"
// @Success      201   {object}  dto.BlokResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/santiyeler/{id}/bloklar [post]
func (h *BlokHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBlokRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.CreateBlok(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Blok getir
// @Tags         bloklar
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Blok ID"
// @Success      200  {object}  dto.BlokResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id} [get]
func (h *BlokHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBlok(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Şantiyenin bloklarını listele
// @Tags         bloklar
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Şantiye ID"
// @Success      200  {array}  dto.BlokResponse
// @Router       /api/santiyeler/{id}/bloklar [get]
func (h *BlokHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListBloklar(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Blok üst verisini güncelle
// @Tags         bloklar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Blok ID"
// @Param        body  body  dto.UpdateBlokRequest  true  "Güncellenecek alanlar"
// @Success      200   {object}  dto.BlokResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id} [put]
func (h *BlokHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBlokRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.UpdateBlok(c.Params("id"), in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Blok sil
// @Tags         bloklar
// @Security     Bearer
// @Param        id  path  string  true  "Blok ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id} [delete]
func (h *BlokHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBlok(c.Params("id")); err != nil {
		return hataYaniti(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Yapı editörü ──────────────────────────────────────────────────────────────

// AddKat godoc
// @Summary      Oturuma kat ekle
// @Description  Yapı editörü: numara kat tipine göre otomatik verilir. Değişiklik kaydedilene kadar bellektedir.
// @Tags         yapi-editoru
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Blok ID"
// @Param        body  body  dto.AddKatRequest  true  "Kat tipi"
// @Success      200   {object}  dto.KatlarResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/katlar [post]
func (h *BlokHandler) AddKat(c *fiber.Ctx) error {
	var in dto.AddKatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	s, err := h.manager.Session(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	katlar, err := s.AddKat(in.Tip)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(dto.KatlarResponse{Katlar: usecase.ToKatDTOs(katlar)})
}

// RemoveKat godoc
// @Summary      Oturumdan kat sil
// @Description  Kalan katlar yeniden numaralanmaz; ara kat silinince numarada boşluk kalır.
// @Tags         yapi-editoru
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "Blok ID"
// @Param        katIndex  path  int     true  "Görünüm sırasındaki kat indeksi"
// @Success      200  {object}  dto.KatlarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/katlar/{katIndex} [delete]
func (h *BlokHandler) RemoveKat(c *fiber.Ctx) error {
	katIndex, err := c.ParamsInt("katIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "katIndex sayı olmalı"})
	}
	s, err := h.manager.Session(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	katlar, err := s.RemoveKat(katIndex)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(dto.KatlarResponse{Katlar: usecase.ToKatDTOs(katlar)})
}

// AddDaire godoc
// @Summary      Kata daire ekle
// @Description  İlk kayıt boş katta "KAT HOLÜ 1" olur; sonrakiler blok kodu + kat no + sıra ile etiketlenir.
// @Tags         yapi-editoru
// @Security     Bearer
// @Produce      json
// @Param        id        path  string  true  "Blok ID"
// @Param        katIndex  path  int     true  "Görünüm sırasındaki kat indeksi"
// @Success      200  {object}  dto.KatlarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/katlar/{katIndex}/daireler [post]
func (h *BlokHandler) AddDaire(c *fiber.Ctx) error {
	katIndex, err := c.ParamsInt("katIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "katIndex sayı olmalı"})
	}
	s, err := h.manager.Session(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	if _, err := s.AddDaire(katIndex); err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(dto.KatlarResponse{Katlar: usecase.ToKatDTOs(s.Katlar())})
}

// RemoveDaire godoc
// @Summary      Daire sil
// @Tags         yapi-editoru
// @Security     Bearer
// @Produce      json
// @Param        id          path  string  true  "Blok ID"
// @Param        katIndex    path  int     true  "Kat indeksi"
// @Param        daireIndex  path  int     true  "Daire indeksi"
// @Success      200  {object}  dto.KatlarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/katlar/{katIndex}/daireler/{daireIndex} [delete]
func (h *BlokHandler) RemoveDaire(c *fiber.Ctx) error {
	katIndex, err := c.ParamsInt("katIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "katIndex sayı olmalı"})
	}
	daireIndex, err := c.ParamsInt("daireIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "daireIndex sayı olmalı"})
	}
	s, err := h.manager.Session(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	if err := s.RemoveDaire(katIndex, daireIndex); err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(dto.KatlarResponse{Katlar: usecase.ToKatDTOs(s.Katlar())})
}

// RenameDaire godoc
// @Summary      Daire numarasını değiştir
// @Description  Numara kat içinde tekil olmalıdır; "KAT HOLÜ n" etiketleri tekillikten muaftır.
// @Tags         yapi-editoru
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string                  true  "Blok ID"
// @Param        katIndex    path  int                     true  "Kat indeksi"
// @Param        daireIndex  path  int                     true  "Daire indeksi"
// @Param        body        body  dto.RenameDaireRequest  true  "Yeni numara"
// @Success      200  {object}  dto.KatlarResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/katlar/{katIndex}/daireler/{daireIndex} [put]
func (h *BlokHandler) RenameDaire(c *fiber.Ctx) error {
	katIndex, err := c.ParamsInt("katIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "katIndex sayı olmalı"})
	}
	daireIndex, err := c.ParamsInt("daireIndex")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "daireIndex sayı olmalı"})
	}
	var in dto.RenameDaireRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	s, err := h.manager.Session(c.Params("id"))
	if err != nil {
		return hataYaniti(c, err)
	}
	if err := s.RenameDaire(katIndex, daireIndex, in.YeniNo); err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(dto.KatlarResponse{Katlar: usecase.ToKatDTOs(s.Katlar())})
}

// Kaydet godoc
// @Summary      Oturumu kaydet
// @Description  Yapı doğrulanır ve tam doküman olarak yazılır; başarılı kayıtta oturum kapanır. Aynı blok için ikinci eşzamanlı kayıt reddedilir.
// @Tags         yapi-editoru
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Blok ID"
// @Success      200  {object}  dto.BlokResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bloklar/{id}/kaydet [post]
func (h *BlokHandler) Kaydet(c *fiber.Ctx) error {
	blokID := c.Params("id")
	if err := h.manager.Commit(blokID); err != nil {
		return hataYaniti(c, err)
	}
	out, err := h.uc.GetBlok(blokID)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}

// Vazgec godoc
// @Summary      Oturumu iptal et
// @Description  Bellekteki değişiklikler atılır; blok kayıtlı haline döner.
// @Tags         yapi-editoru
// @Security     Bearer
// @Param        id  path  string  true  "Blok ID"
// @Success      204
// @Router       /api/bloklar/{id}/vazgec [post]
func (h *BlokHandler) Vazgec(c *fiber.Ctx) error {
	h.manager.Discard(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
