package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// BlokRepository blok dokümanlarının kalıcılık sözleşmesi.
// Save tam-doküman değiştirme semantiğiyle çalışır: kat/daire yapısı dahil
// bloğun tamamı üzerine yazılır (son yazan kazanır, bkz. DESIGN.md).
type BlokRepository interface {
	Create(blok *entity.Blok) error
	GetByID(id string) (*entity.Blok, error)
	ListBySantiye(santiyeID string) ([]*entity.Blok, error)
	Save(blok *entity.Blok) error
	Delete(id string) error
}
