package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// EksiklikRepository eksiklik (punch-list) kalıcılık sözleşmesi.
type EksiklikRepository interface {
	Create(eksiklik *entity.Eksiklik) error
	GetByID(id string) (*entity.Eksiklik, error)
	ListByBlok(blokID string, durum string, limit, offset int) ([]*entity.Eksiklik, error)
	Update(eksiklik *entity.Eksiklik) error
	Delete(id string) error
}
