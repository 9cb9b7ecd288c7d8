package dto

import "time"

// CreateEksiklikRequest POST /api/bloklar/{id}/eksiklikler gövdesi.
type CreateEksiklikRequest struct {
	KatNo    string `json:"kat_no"`
	DaireNo  string `json:"daire_no"`
	Aciklama string `json:"aciklama"`
	FotoURL  string `json:"foto_url,omitempty"`
}

// UpdateEksiklikRequest kısmi güncelleme.
type UpdateEksiklikRequest struct {
	Aciklama *string `json:"aciklama,omitempty"`
	Durum    *string `json:"durum,omitempty"`
	FotoURL  *string `json:"foto_url,omitempty"`
}

// EksiklikResponse eksiklik yanıtı.
type EksiklikResponse struct {
	ID        string    `json:"id"`
	BlokID    string    `json:"blok_id"`
	KatNo     string    `json:"kat_no"`
	DaireNo   string    `json:"daire_no"`
	Aciklama  string    `json:"aciklama"`
	Durum     string    `json:"durum"`
	FotoURL   string    `json:"foto_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EksiklikListResponse sayfalı eksiklik listesi.
type EksiklikListResponse struct {
	Items []EksiklikResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
