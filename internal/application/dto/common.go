package dto

// PageRequest listeler için sayfalama.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage sıfır değerlere varsayılanları uygular ve sınırları zorlar.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse yanıtlardaki sayfa üst verisi.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse HTTP hata gövdesi. Message ihlal edilen kuralı ve varsa
// çakışan değeri kullanıcıya söyler.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
