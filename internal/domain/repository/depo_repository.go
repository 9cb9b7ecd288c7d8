package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// DepoRepository depo kalıcılık sözleşmesi.
type DepoRepository interface {
	Create(depo *entity.Depo) error
	GetByID(id string) (*entity.Depo, error)
	ListBySantiye(santiyeID string) ([]*entity.Depo, error)
	Update(depo *entity.Depo) error
	Delete(id string) error
}
