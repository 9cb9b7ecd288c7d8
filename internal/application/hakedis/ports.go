package hakedis

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// PDFGenerator hakediş raporunu PDF baytlarına çevirir.
// Maroto uygulaması infrastructure/pdf altındadır.
type PDFGenerator interface {
	HakedisPDF(santiye *entity.Santiye, hakedis *entity.Hakedis) ([]byte, error)
}
