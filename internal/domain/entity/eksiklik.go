package entity

import "time"

// Eksiklik durumları.
const (
	EksiklikAcik       = "ACIK"
	EksiklikDevam      = "DEVAM"
	EksiklikTamamlandi = "TAMAMLANDI"
)

// Eksiklik bir daireye karşı tutulan kusur/eksik kaydıdır.
// Daire blok dokümanının içinde yaşadığı için referans blok + kat no + daire no üçlüsüyledir.
type Eksiklik struct {
	ID        string
	BlokID    string
	KatNo     string
	DaireNo   string
	Aciklama  string
	Durum     string
	FotoURL   string // opsiyonel
	CreatedAt time.Time
	UpdatedAt time.Time
}
