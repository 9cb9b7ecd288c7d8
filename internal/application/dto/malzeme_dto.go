package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMalzemeRequest POST /api/depolar/{id}/malzemeler gövdesi.
// AcilisMiktar ilk stok; güncel miktar buradan başlar.
type CreateMalzemeRequest struct {
	Ad           string          `json:"ad"`
	Kategori     string          `json:"kategori"`
	Birim        string          `json:"birim"`
	AcilisMiktar decimal.Decimal `json:"acilis_miktar"`
	KritikStok   decimal.Decimal `json:"kritik_stok"`
	ImageURL     string          `json:"image_url,omitempty"`
	Aciklama     string          `json:"aciklama,omitempty"`
}

// UpdateMalzemeRequest kısmi güncelleme. Miktar bilinçli olarak yoktur:
// stok yalnızca hareketler üzerinden değişir.
type UpdateMalzemeRequest struct {
	Ad         *string          `json:"ad,omitempty"`
	Kategori   *string          `json:"kategori,omitempty"`
	Birim      *string          `json:"birim,omitempty"`
	KritikStok *decimal.Decimal `json:"kritik_stok,omitempty"`
	ImageURL   *string          `json:"image_url,omitempty"`
	Aciklama   *string          `json:"aciklama,omitempty"`
}

// MalzemeResponse malzeme yanıtı.
type MalzemeResponse struct {
	ID           string          `json:"id"`
	DepoID       string          `json:"depo_id"`
	Ad           string          `json:"ad"`
	Kategori     string          `json:"kategori"`
	Birim        string          `json:"birim"`
	Miktar       decimal.Decimal `json:"miktar"`
	AcilisMiktar decimal.Decimal `json:"acilis_miktar"`
	KritikStok   decimal.Decimal `json:"kritik_stok"`
	Kritik       bool            `json:"kritik"` // miktar <= kritik stok
	ImageURL     string          `json:"image_url,omitempty"`
	Aciklama     string          `json:"aciklama,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MalzemeListResponse sayfalı malzeme listesi.
type MalzemeListResponse struct {
	Items []MalzemeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
