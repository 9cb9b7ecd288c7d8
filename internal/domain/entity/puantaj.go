package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Puantaj durumları.
const (
	PuantajTam   = "TAM"   // tam gün
	PuantajYarim = "YARIM" // yarım gün
	PuantajYok   = "YOK"   // gelmedi
)

// Puantaj bir personelin tek bir gününe ait devam kaydıdır.
// Personel + tarih ikilisi tekildir; aynı güne ikinci kayıt mevcut kaydı günceller.
type Puantaj struct {
	ID         string
	PersonelID string
	Tarih      time.Time // gün hassasiyetinde
	Durum      string
	Mesai      decimal.Decimal // fazla mesai saati
	Not        string
	CreatedAt  time.Time
}
