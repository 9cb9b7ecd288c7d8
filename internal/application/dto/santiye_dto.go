package dto

import "time"

// CreateSantiyeRequest POST /api/santiyeler gövdesi.
type CreateSantiyeRequest struct {
	Ad      string `json:"ad"`
	Adres   string `json:"adres"`
	Isveren string `json:"isveren"`
}

// UpdateSantiyeRequest kısmi güncelleme; nil alanlar dokunulmadan bırakılır.
type UpdateSantiyeRequest struct {
	Ad      *string `json:"ad,omitempty"`
	Adres   *string `json:"adres,omitempty"`
	Isveren *string `json:"isveren,omitempty"`
}

// SantiyeResponse şantiye yanıtı.
type SantiyeResponse struct {
	ID        string    `json:"id"`
	Ad        string    `json:"ad"`
	Adres     string    `json:"adres"`
	Isveren   string    `json:"isveren"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SantiyeListResponse sayfalı şantiye listesi.
type SantiyeListResponse struct {
	Items []SantiyeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
