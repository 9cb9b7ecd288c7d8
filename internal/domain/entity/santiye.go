package entity

import "time"

// Santiye bir inşaat sahasını temsil eder; bloklar, depolar, personel,
// sözleşmeler ve hakedişler şantiyeye bağlıdır.
type Santiye struct {
	ID        string
	Ad        string
	Adres     string
	Isveren   string // işveren/ana yüklenici adı
	CreatedAt time.Time
	UpdatedAt time.Time
}
