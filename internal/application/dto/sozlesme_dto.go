package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSozlesmeRequest POST /api/santiyeler/{id}/sozlesmeler gövdesi.
type CreateSozlesmeRequest struct {
	Taraf     string          `json:"taraf"`
	Konu      string          `json:"konu"`
	Tutar     decimal.Decimal `json:"tutar"`
	Baslangic time.Time       `json:"baslangic"`
	Bitis     time.Time       `json:"bitis"`
	DosyaURL  string          `json:"dosya_url,omitempty"`
}

// UpdateSozlesmeRequest kısmi güncelleme.
type UpdateSozlesmeRequest struct {
	Taraf     *string          `json:"taraf,omitempty"`
	Konu      *string          `json:"konu,omitempty"`
	Tutar     *decimal.Decimal `json:"tutar,omitempty"`
	Baslangic *time.Time       `json:"baslangic,omitempty"`
	Bitis     *time.Time       `json:"bitis,omitempty"`
	DosyaURL  *string          `json:"dosya_url,omitempty"`
}

// SozlesmeResponse sözleşme yanıtı.
type SozlesmeResponse struct {
	ID        string          `json:"id"`
	SantiyeID string          `json:"santiye_id"`
	Taraf     string          `json:"taraf"`
	Konu      string          `json:"konu"`
	Tutar     decimal.Decimal `json:"tutar"`
	Baslangic time.Time       `json:"baslangic"`
	Bitis     time.Time       `json:"bitis"`
	DosyaURL  string          `json:"dosya_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SozlesmeListResponse sayfalı sözleşme listesi.
type SozlesmeListResponse struct {
	Items []SozlesmeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
