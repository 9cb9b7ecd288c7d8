package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HakedisKalemiDTO hakedişteki tek iş kalemi.
type HakedisKalemiDTO struct {
	Aciklama   string          `json:"aciklama"`
	Birim      string          `json:"birim"`
	Miktar     decimal.Decimal `json:"miktar"`
	BirimFiyat decimal.Decimal `json:"birim_fiyat"`
	Tutar      decimal.Decimal `json:"tutar,omitempty"` // yanıtlarda doldurulur
}

// CreateHakedisRequest POST /api/santiyeler/{id}/hakedisler gövdesi.
// No sunucu tarafından şantiye içinde ardışık verilir.
type CreateHakedisRequest struct {
	Donem    string             `json:"donem"` // ör. "2026-08"
	Aciklama string             `json:"aciklama,omitempty"`
	Kalemler []HakedisKalemiDTO `json:"kalemler"`
}

// UpdateHakedisRequest kalemleri ve açıklamayı tam liste olarak değiştirir.
type UpdateHakedisRequest struct {
	Aciklama *string             `json:"aciklama,omitempty"`
	Kalemler *[]HakedisKalemiDTO `json:"kalemler,omitempty"`
}

// HakedisResponse hakediş yanıtı.
type HakedisResponse struct {
	ID        string             `json:"id"`
	SantiyeID string             `json:"santiye_id"`
	No        int                `json:"no"`
	Donem     string             `json:"donem"`
	Aciklama  string             `json:"aciklama,omitempty"`
	Kalemler  []HakedisKalemiDTO `json:"kalemler"`
	Toplam    decimal.Decimal    `json:"toplam"`
	CreatedAt time.Time          `json:"created_at"`
}

// HakedisListResponse sayfalı hakediş listesi.
type HakedisListResponse struct {
	Items []HakedisResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
