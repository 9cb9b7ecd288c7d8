package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// PersonelRepository personel kalıcılık sözleşmesi.
type PersonelRepository interface {
	Create(personel *entity.Personel) error
	GetByID(id string) (*entity.Personel, error)
	ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Personel, error)
	Update(personel *entity.Personel) error
	Delete(id string) error
}
