package repository

import (
	"github.com/shopspring/decimal"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

// MalzemeRepository malzeme kalıcılık sözleşmesi.
// GetForUpdate yalnızca bir transaction içinde anlamlıdır; malzeme satırını
// kilitleyerek (SELECT FOR UPDATE) stok defterinin miktar güncellemesini
// eşzamanlı yazarlara karşı korur.
type MalzemeRepository interface {
	Create(malzeme *entity.Malzeme) error
	GetByID(id string) (*entity.Malzeme, error)
	GetForUpdate(id string) (*entity.Malzeme, error)
	ListByDepo(depoID string, limit, offset int) ([]*entity.Malzeme, error)
	ListKritik(santiyeID string) ([]*entity.Malzeme, error)
	Update(malzeme *entity.Malzeme) error
	UpdateMiktar(id string, miktar decimal.Decimal) error
	Delete(id string) error
}
