package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/auth"
	"github.com/santiyepro/santiye-api/internal/application/dto"
)

// AuthHandler kimlik doğrulama uç noktaları.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler handler'ı kurar.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Kullanıcı kaydı
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Kayıt bilgileri"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.RegisterUser(in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Giriş
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Giriş bilgileri"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return hataYaniti(c, err)
	}
	return c.JSON(out)
}
