package entity

import "time"

// Kullanıcı rolleri.
const (
	RoleAdmin       = "admin"
	RoleSantiyeSefi = "santiye_sefi"
	RoleDepocu      = "depocu"
)

// User sisteme giriş yapan kullanıcıyı temsil eder.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Ad           string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
