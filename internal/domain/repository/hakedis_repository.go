package repository

import "github.com/santiyepro/santiye-api/internal/domain/entity"

// HakedisRepository hakediş kalıcılık sözleşmesi.
// NextNo şantiye içinde bir sonraki hakediş sıra numarasını döner (1'den başlar).
type HakedisRepository interface {
	Create(hakedis *entity.Hakedis) error
	GetByID(id string) (*entity.Hakedis, error)
	ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Hakedis, error)
	NextNo(santiyeID string) (int, error)
	Update(hakedis *entity.Hakedis) error
	Delete(id string) error
}
