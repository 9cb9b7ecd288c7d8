package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HareketRequest stok giriş/çıkış ekleme ve düzenleme gövdesi.
type HareketRequest struct {
	Tip    string          `json:"tip"` // IN | OUT
	Miktar decimal.Decimal `json:"miktar"`
	Not    string          `json:"not,omitempty"`
	Tarih  *time.Time      `json:"tarih,omitempty"` // boşsa şimdi
}

// HareketResponse tek hareket yanıtı.
type HareketResponse struct {
	ID        string          `json:"id"`
	MalzemeID string          `json:"malzeme_id"`
	Tip       string          `json:"tip"`
	Miktar    decimal.Decimal `json:"miktar"`
	Not       string          `json:"not,omitempty"`
	Tarih     time.Time       `json:"tarih"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// HareketListResponse malzemenin hareket geçmişi + güncel miktar.
type HareketListResponse struct {
	Miktar decimal.Decimal   `json:"miktar"`
	Items  []HareketResponse `json:"items"`
	Page   PageResponse      `json:"page"`
}
