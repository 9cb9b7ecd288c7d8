package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stok hareketi tipleri.
const (
	HareketGiris = "IN"  // depoya giriş
	HareketCikis = "OUT" // depodan çıkış
)

// Hareket bir malzemeye bağlı tek bir giriş/çıkış işlemini temsil eder.
// Miktar her zaman pozitiftir; işaret Tip'ten türetilir (IN: +, OUT: -).
type Hareket struct {
	ID        string
	MalzemeID string
	Tip       string
	Miktar    decimal.Decimal
	Not       string
	Tarih     time.Time
	CreatedAt time.Time
	CreatedBy string // UserID
}

// Delta hareketin stoğa işaretli etkisini döner.
func (h *Hareket) Delta() decimal.Decimal {
	if h.Tip == HareketCikis {
		return h.Miktar.Neg()
	}
	return h.Miktar
}
