package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// EksiklikUseCase daire bazlı eksiklik (kusur) takibi.
type EksiklikUseCase struct {
	eksiklikRepo repository.EksiklikRepository
	blokRepo     repository.BlokRepository
}

// NewEksiklikUseCase use case'i kurar.
func NewEksiklikUseCase(eksiklikRepo repository.EksiklikRepository, blokRepo repository.BlokRepository) *EksiklikUseCase {
	return &EksiklikUseCase{eksiklikRepo: eksiklikRepo, blokRepo: blokRepo}
}

func gecerliEksiklikDurum(d string) bool {
	switch d {
	case entity.EksiklikAcik, entity.EksiklikDevam, entity.EksiklikTamamlandi:
		return true
	}
	return false
}

// CreateEksiklik bloktaki bir daireye eksiklik kaydı açar. Kat ve daire
// blok dokümanında gerçekten var olmalıdır.
func (uc *EksiklikUseCase) CreateEksiklik(blokID string, in dto.CreateEksiklikRequest) (*dto.EksiklikResponse, error) {
	if in.Aciklama == "" {
		return nil, domain.ErrInvalidInput
	}
	blok, err := uc.blokRepo.GetByID(blokID)
	if err != nil {
		return nil, err
	}
	if !daireVarMi(blok, in.KatNo, in.DaireNo) {
		return nil, fmt.Errorf("%w: %s katında %s dairesi yok", domain.ErrInvalidInput, in.KatNo, in.DaireNo)
	}
	now := time.Now()
	eksiklik := &entity.Eksiklik{
		ID:        uuid.New().String(),
		BlokID:    blokID,
		KatNo:     in.KatNo,
		DaireNo:   in.DaireNo,
		Aciklama:  in.Aciklama,
		Durum:     entity.EksiklikAcik,
		FotoURL:   in.FotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.eksiklikRepo.Create(eksiklik); err != nil {
		return nil, err
	}
	return toEksiklikResponse(eksiklik), nil
}

// GetEksiklik tek kayıt döner.
func (uc *EksiklikUseCase) GetEksiklik(id string) (*dto.EksiklikResponse, error) {
	eksiklik, err := uc.eksiklikRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toEksiklikResponse(eksiklik), nil
}

// ListEksiklikler blok eksikliklerini, istenirse duruma göre süzerek döner.
func (uc *EksiklikUseCase) ListEksiklikler(blokID, durum string, page dto.PageRequest) (*dto.EksiklikListResponse, error) {
	if durum != "" && !gecerliEksiklikDurum(durum) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	kayitlar, err := uc.eksiklikRepo.ListByBlok(blokID, durum, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EksiklikResponse, 0, len(kayitlar))
	for _, e := range kayitlar {
		items = append(items, *toEksiklikResponse(e))
	}
	return &dto.EksiklikListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateEksiklik açıklama, durum ve fotoğrafı günceller.
func (uc *EksiklikUseCase) UpdateEksiklik(id string, in dto.UpdateEksiklikRequest) (*dto.EksiklikResponse, error) {
	eksiklik, err := uc.eksiklikRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Aciklama != nil {
		eksiklik.Aciklama = *in.Aciklama
	}
	if in.Durum != nil {
		if !gecerliEksiklikDurum(*in.Durum) {
			return nil, domain.ErrInvalidInput
		}
		eksiklik.Durum = *in.Durum
	}
	if in.FotoURL != nil {
		eksiklik.FotoURL = *in.FotoURL
	}
	eksiklik.UpdatedAt = time.Now()
	if err := uc.eksiklikRepo.Update(eksiklik); err != nil {
		return nil, err
	}
	return toEksiklikResponse(eksiklik), nil
}

// DeleteEksiklik kaydı siler.
func (uc *EksiklikUseCase) DeleteEksiklik(id string) error {
	return uc.eksiklikRepo.Delete(id)
}

// daireVarMi kat no + daire no ikilisini blok dokümanında arar.
func daireVarMi(blok *entity.Blok, katNo, daireNo string) bool {
	for _, kat := range blok.Katlar {
		if kat.No != katNo {
			continue
		}
		for _, d := range kat.Daireler {
			if d.No == daireNo {
				return true
			}
		}
	}
	return false
}

func toEksiklikResponse(e *entity.Eksiklik) *dto.EksiklikResponse {
	return &dto.EksiklikResponse{
		ID:        e.ID,
		BlokID:    e.BlokID,
		KatNo:     e.KatNo,
		DaireNo:   e.DaireNo,
		Aciklama:  e.Aciklama,
		Durum:     e.Durum,
		FotoURL:   e.FotoURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
