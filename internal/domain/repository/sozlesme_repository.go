package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// SozlesmeRepository sözleşme kalıcılık sözleşmesi.
type SozlesmeRepository interface {
	Create(sozlesme *entity.Sozlesme) error
	GetByID(id string) (*entity.Sozlesme, error)
	ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Sozlesme, error)
	Update(sozlesme *entity.Sozlesme) error
	Delete(id string) error
}
