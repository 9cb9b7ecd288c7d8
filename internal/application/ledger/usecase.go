// Package ledger stok defterini yönetir: bir malzemenin önbelleklenmiş
// miktarını hareket geçmişiyle tutarlı tutar ve stoğu negatife düşürecek
// işlemleri reddeder.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
	"github.com/santiyepro/santiye-api/pkg/logger"
)

// HareketInput stok giriş/çıkış işleminin girdisi.
type HareketInput struct {
	Tip    string // IN | OUT
	Miktar decimal.Decimal
	Not    string
	Tarih  time.Time // sıfır değer: şimdi
}

// StokDefteriUseCase hareket ekleme/düzenleme/silme işlemlerini malzeme satırı
// kilitli tek bir transaction içinde yürütür (SELECT FOR UPDATE + Commit/Rollback).
type StokDefteriUseCase struct {
	tx          TxRunner
	malzemeRepo repository.MalzemeRepository // okuma yolu, pool'a bağlı
	log         *logger.Logger
}

// NewStokDefteriUseCase use case'i kurar.
func NewStokDefteriUseCase(tx TxRunner, malzemeRepo repository.MalzemeRepository, log *logger.Logger) *StokDefteriUseCase {
	return &StokDefteriUseCase{tx: tx, malzemeRepo: malzemeRepo, log: log}
}

// delta hareketin stoğa işaretli etkisi: IN +miktar, OUT -miktar.
func delta(tip string, miktar decimal.Decimal) decimal.Decimal {
	if tip == entity.HareketCikis {
		return miktar.Neg()
	}
	return miktar
}

func (in HareketInput) dogrula() error {
	if in.Tip != entity.HareketGiris && in.Tip != entity.HareketCikis {
		return fmt.Errorf("%w: hareket tipi %q", domain.ErrInvalidInput, in.Tip)
	}
	if !in.Miktar.IsPositive() {
		return fmt.Errorf("%w: miktar pozitif olmalı", domain.ErrInvalidInput)
	}
	return nil
}

// AddHareket yeni hareketi kaydeder ve malzeme miktarını günceller.
// Sonuç negatif olacaksa hiçbir değişiklik yapılmadan ErrNegativeStock döner.
func (uc *StokDefteriUseCase) AddHareket(ctx context.Context, malzemeID, userID string, in HareketInput) (*entity.Hareket, error) {
	if err := in.dogrula(); err != nil {
		return nil, err
	}
	now := time.Now()
	tarih := in.Tarih
	if tarih.IsZero() {
		tarih = now
	}
	hareket := &entity.Hareket{
		ID:        uuid.New().String(),
		MalzemeID: malzemeID,
		Tip:       in.Tip,
		Miktar:    in.Miktar,
		Not:       in.Not,
		Tarih:     tarih,
		CreatedAt: now,
		CreatedBy: userID,
	}
	err := uc.tx.Run(ctx, func(malzemeRepo repository.MalzemeRepository, hareketRepo repository.HareketRepository) error {
		malzeme, err := malzemeRepo.GetForUpdate(malzemeID)
		if err != nil {
			return err
		}
		if malzeme == nil {
			return fmt.Errorf("%w: malzeme %s", domain.ErrNotFound, malzemeID)
		}
		yeni := malzeme.Miktar.Add(delta(in.Tip, in.Miktar))
		if yeni.IsNegative() {
			return fmt.Errorf("%w: mevcut %s, işlem sonrası %s olurdu",
				domain.ErrNegativeStock, malzeme.Miktar, yeni)
		}
		if err := hareketRepo.Create(hareket); err != nil {
			return err
		}
		return malzemeRepo.UpdateMiktar(malzemeID, yeni)
	})
	if err != nil {
		return nil, err
	}
	return hareket, nil
}

// EditHareket mevcut hareketin alanlarını değiştirir ve net düzeltmeyi
// (eskinin tersi + yeninin etkisi) malzeme miktarına uygular. Hareket kaydını
// yeniden yazmak yeterli değildir; miktar da aynı transaction'da düzeltilir.
func (uc *StokDefteriUseCase) EditHareket(ctx context.Context, malzemeID, hareketID string, in HareketInput) error {
	if err := in.dogrula(); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(malzemeRepo repository.MalzemeRepository, hareketRepo repository.HareketRepository) error {
		malzeme, err := malzemeRepo.GetForUpdate(malzemeID)
		if err != nil {
			return err
		}
		if malzeme == nil {
			return fmt.Errorf("%w: malzeme %s", domain.ErrNotFound, malzemeID)
		}
		eski, err := hareketRepo.GetByID(hareketID)
		if err != nil {
			return err
		}
		if eski == nil || eski.MalzemeID != malzemeID {
			return fmt.Errorf("%w: hareket %s", domain.ErrNotFound, hareketID)
		}
		duzeltme := delta(in.Tip, in.Miktar).Sub(eski.Delta())
		yeni := malzeme.Miktar.Add(duzeltme)
		if yeni.IsNegative() {
			return fmt.Errorf("%w: mevcut %s, düzeltme sonrası %s olurdu",
				domain.ErrNegativeStock, malzeme.Miktar, yeni)
		}
		eski.Tip = in.Tip
		eski.Miktar = in.Miktar
		eski.Not = in.Not
		if !in.Tarih.IsZero() {
			eski.Tarih = in.Tarih
		}
		if err := hareketRepo.Update(eski); err != nil {
			return err
		}
		return malzemeRepo.UpdateMiktar(malzemeID, yeni)
	})
}

// DeleteHareket hareketi siler ve etkisini geri alır. Silmede negatif stok
// denetimi yapılmaz: araya giren çıkışlar stoğu tüketmişse miktar negatife
// düşebilir; bu durum engellenmez, uyarı olarak loglanır.
func (uc *StokDefteriUseCase) DeleteHareket(ctx context.Context, malzemeID, hareketID string) error {
	return uc.tx.Run(ctx, func(malzemeRepo repository.MalzemeRepository, hareketRepo repository.HareketRepository) error {
		malzeme, err := malzemeRepo.GetForUpdate(malzemeID)
		if err != nil {
			return err
		}
		if malzeme == nil {
			return fmt.Errorf("%w: malzeme %s", domain.ErrNotFound, malzemeID)
		}
		hareket, err := hareketRepo.GetByID(hareketID)
		if err != nil {
			return err
		}
		if hareket == nil || hareket.MalzemeID != malzemeID {
			return fmt.Errorf("%w: hareket %s", domain.ErrNotFound, hareketID)
		}
		yeni := malzeme.Miktar.Sub(hareket.Delta())
		if yeni.IsNegative() {
			uc.log.Warn().
				Str("malzeme_id", malzemeID).
				Str("hareket_id", hareketID).
				Str("yeni_miktar", yeni.String()).
				Msg("hareket silme stoğu negatife düşürdü")
		}
		if err := hareketRepo.Delete(hareketID); err != nil {
			return err
		}
		return malzemeRepo.UpdateMiktar(malzemeID, yeni)
	})
}

// CurrentMiktar önbelleklenmiş güncel stoğu döner; geçmişten hesaplama yapmaz.
func (uc *StokDefteriUseCase) CurrentMiktar(malzemeID string) (decimal.Decimal, error) {
	malzeme, err := uc.malzemeRepo.GetByID(malzemeID)
	if err != nil {
		return decimal.Zero, err
	}
	if malzeme == nil {
		return decimal.Zero, fmt.Errorf("%w: malzeme %s", domain.ErrNotFound, malzemeID)
	}
	return malzeme.Miktar, nil
}

// RecomputeMiktar önbelleklenmiş miktarı açılış stoğu + hareket toplamından
// yeniden türetir ve yazar. Bakım/onarım işlemidir, normal okuma yolunda kullanılmaz.
func (uc *StokDefteriUseCase) RecomputeMiktar(ctx context.Context, malzemeID string) (decimal.Decimal, error) {
	var sonuc decimal.Decimal
	err := uc.tx.Run(ctx, func(malzemeRepo repository.MalzemeRepository, hareketRepo repository.HareketRepository) error {
		malzeme, err := malzemeRepo.GetForUpdate(malzemeID)
		if err != nil {
			return err
		}
		if malzeme == nil {
			return fmt.Errorf("%w: malzeme %s", domain.ErrNotFound, malzemeID)
		}
		toplam, err := hareketRepo.SumDelta(malzemeID)
		if err != nil {
			return err
		}
		sonuc = malzeme.AcilisMiktar.Add(toplam)
		if !sonuc.Equal(malzeme.Miktar) {
			uc.log.Warn().
				Str("malzeme_id", malzemeID).
				Str("onbellek", malzeme.Miktar.String()).
				Str("hesaplanan", sonuc.String()).
				Msg("stok önbelleği geçmişle uyuşmuyordu, onarıldı")
		}
		return malzemeRepo.UpdateMiktar(malzemeID, sonuc)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return sonuc, nil
}
