package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePersonelRequest POST /api/santiyeler/{id}/personeller gövdesi.
type CreatePersonelRequest struct {
	Ad      string          `json:"ad"`
	Soyad   string          `json:"soyad"`
	Gorev   string          `json:"gorev"`
	Telefon string          `json:"telefon,omitempty"`
	Yevmiye decimal.Decimal `json:"yevmiye"`
}

// UpdatePersonelRequest kısmi güncelleme.
type UpdatePersonelRequest struct {
	Ad      *string          `json:"ad,omitempty"`
	Soyad   *string          `json:"soyad,omitempty"`
	Gorev   *string          `json:"gorev,omitempty"`
	Telefon *string          `json:"telefon,omitempty"`
	Yevmiye *decimal.Decimal `json:"yevmiye,omitempty"`
	Aktif   *bool            `json:"aktif,omitempty"`
}

// PersonelResponse personel yanıtı.
type PersonelResponse struct {
	ID        string          `json:"id"`
	SantiyeID string          `json:"santiye_id"`
	Ad        string          `json:"ad"`
	Soyad     string          `json:"soyad"`
	Gorev     string          `json:"gorev"`
	Telefon   string          `json:"telefon,omitempty"`
	Yevmiye   decimal.Decimal `json:"yevmiye"`
	Aktif     bool            `json:"aktif"`
	CreatedAt time.Time       `json:"created_at"`
}

// PersonelListResponse sayfalı personel listesi.
type PersonelListResponse struct {
	Items []PersonelResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PuantajRequest bir günün devam kaydı; aynı güne ikinci istek kaydı günceller.
type PuantajRequest struct {
	Tarih time.Time       `json:"tarih"`
	Durum string          `json:"durum"` // TAM | YARIM | YOK
	Mesai decimal.Decimal `json:"mesai,omitempty"`
	Not   string          `json:"not,omitempty"`
}

// PuantajResponse tek puantaj kaydı.
type PuantajResponse struct {
	ID         string          `json:"id"`
	PersonelID string          `json:"personel_id"`
	Tarih      time.Time       `json:"tarih"`
	Durum      string          `json:"durum"`
	Mesai      decimal.Decimal `json:"mesai"`
	Not        string          `json:"not,omitempty"`
}

// PuantajAyResponse bir personelin aylık puantajı.
type PuantajAyResponse struct {
	PersonelID string            `json:"personel_id"`
	Yil        int               `json:"yil"`
	Ay         int               `json:"ay"`
	Items      []PuantajResponse `json:"items"`
}
