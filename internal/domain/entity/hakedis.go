package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hakedis bir şantiyenin dönemsel hakediş (progress billing) raporunu temsil eder.
// No şantiye içinde ardışık verilir; kalemler dokümanla birlikte saklanır.
type Hakedis struct {
	ID        string
	SantiyeID string
	No        int
	Donem     string // ör. "2026-08"
	Aciklama  string
	Kalemler  []HakedisKalemi
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HakedisKalemi hakedişteki tek bir iş kalemi.
type HakedisKalemi struct {
	Aciklama   string
	Birim      string
	Miktar     decimal.Decimal
	BirimFiyat decimal.Decimal
}

// Tutar kalemin toplamını döner.
func (k HakedisKalemi) Tutar() decimal.Decimal {
	return k.Miktar.Mul(k.BirimFiyat)
}

// Toplam hakedişin genel toplamını döner.
func (h *Hakedis) Toplam() decimal.Decimal {
	toplam := decimal.Zero
	for _, k := range h.Kalemler {
		toplam = toplam.Add(k.Tutar())
	}
	return toplam
}
