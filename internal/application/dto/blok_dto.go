package dto

import "time"

// CreateBlokRequest POST /api/santiyeler/{id}/bloklar gövdesi.
type CreateBlokRequest struct {
	Ad  string `json:"ad"`
	Kod string `json:"kod"`
}

// UpdateBlokRequest blok üst verisi güncellemesi (yapı değil).
type UpdateBlokRequest struct {
	Ad  *string `json:"ad,omitempty"`
	Kod *string `json:"kod,omitempty"`
}

// BlokResponse blok yanıtı; katlar her zaman kanonik görünüm sırasındadır.
type BlokResponse struct {
	ID        string    `json:"id"`
	SantiyeID string    `json:"santiye_id"`
	Ad        string    `json:"ad"`
	Kod       string    `json:"kod"`
	Katlar    []KatDTO  `json:"katlar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KatDTO tek kat.
type KatDTO struct {
	No       string     `json:"no"`
	Tip      string     `json:"tip"`
	Ad       string     `json:"ad,omitempty"`
	Daireler []DaireDTO `json:"daireler"`
}

// DaireDTO tek daire ya da kat holü.
type DaireDTO struct {
	No  string `json:"no"`
	Tip string `json:"tip"`
}

// AddKatRequest yapı editörü: kat ekleme.
type AddKatRequest struct {
	Tip string `json:"tip"` // BODRUM | ZEMIN | NORMAL | CATI
}

// RenameDaireRequest yapı editörü: daire adını değiştirme.
type RenameDaireRequest struct {
	YeniNo string `json:"yeni_no"`
}

// KatlarResponse yapı editörü operasyonlarının ortak yanıtı: güncel katlar.
type KatlarResponse struct {
	Katlar []KatDTO `json:"katlar"`
}
