package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sozlesme bir şantiyeye bağlı taşeron/tedarik sözleşmesini temsil eder.
type Sozlesme struct {
	ID        string
	SantiyeID string
	Taraf     string // karşı taraf (taşeron/tedarikçi)
	Konu      string
	Tutar     decimal.Decimal
	Baslangic time.Time
	Bitis     time.Time
	DosyaURL  string // taranmış sözleşme dosyası (opsiyonel)
	CreatedAt time.Time
	UpdatedAt time.Time
}
