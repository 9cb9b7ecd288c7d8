package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// PuantajRepository puantaj kalıcılık sözleşmesi.
// Upsert personel + tarih ikilisi üzerinden çalışır: aynı güne ikinci kayıt
// mevcut kaydın durumunu ve mesaisini günceller.
type PuantajRepository interface {
	Upsert(puantaj *entity.Puantaj) error
	ListByPersonelAy(personelID string, yil, ay int) ([]*entity.Puantaj, error)
	Delete(id string) error
}
