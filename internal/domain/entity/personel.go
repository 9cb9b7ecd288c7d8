package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Personel bir şantiyede çalışan kişiyi temsil eder.
type Personel struct {
	ID        string
	SantiyeID string
	Ad        string
	Soyad     string
	Gorev     string // kalfa, usta, işçi, formen...
	Telefon   string
	Yevmiye   decimal.Decimal // günlük ücret
	Aktif     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
