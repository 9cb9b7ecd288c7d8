package dto

import "time"

// CreateDepoRequest POST /api/santiyeler/{id}/depolar gövdesi.
type CreateDepoRequest struct {
	Ad      string `json:"ad"`
	Sorumlu string `json:"sorumlu"`
}

// UpdateDepoRequest kısmi güncelleme.
type UpdateDepoRequest struct {
	Ad      *string `json:"ad,omitempty"`
	Sorumlu *string `json:"sorumlu,omitempty"`
}

// DepoResponse depo yanıtı.
type DepoResponse struct {
	ID        string    `json:"id"`
	SantiyeID string    `json:"santiye_id"`
	Ad        string    `json:"ad"`
	Sorumlu   string    `json:"sorumlu"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
