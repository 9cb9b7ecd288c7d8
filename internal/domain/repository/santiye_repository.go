package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// SantiyeRepository şantiye kalıcılık sözleşmesi.
type SantiyeRepository interface {
	Create(santiye *entity.Santiye) error
	GetByID(id string) (*entity.Santiye, error)
	List(limit, offset int) ([]*entity.Santiye, error)
	Update(santiye *entity.Santiye) error
	Delete(id string) error
}
