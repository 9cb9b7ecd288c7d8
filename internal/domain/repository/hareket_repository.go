package repository

import (
	"github.com/shopspring/decimal"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

// HareketRepository stok hareketlerinin kalıcılık sözleşmesi.
// SumDelta malzemenin tüm hareketlerinin işaretli toplamını döner (IN: +, OUT: -);
// onarım amaçlı yeniden hesaplamada kullanılır, normal okuma yolunda değil.
type HareketRepository interface {
	Create(hareket *entity.Hareket) error
	GetByID(id string) (*entity.Hareket, error)
	ListByMalzeme(malzemeID string, limit, offset int) ([]*entity.Hareket, error)
	Update(hareket *entity.Hareket) error
	Delete(id string) error
	SumDelta(malzemeID string) (decimal.Decimal, error)
}
