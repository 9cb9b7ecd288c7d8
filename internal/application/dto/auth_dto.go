package dto

import "time"

// RegisterRequest POST /api/auth/register gövdesi.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Ad       string `json:"ad"`
	Role     string `json:"role,omitempty"` // boşsa depocu
}

// LoginRequest POST /api/auth/login gövdesi.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse kullanıcı yanıtı (parola hash'i asla dışarı çıkmaz).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Ad        string    `json:"ad"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse başarılı girişte token + kullanıcı.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
