// Package usecase şantiye yönetiminin CRUD iş akışlarını barındırır.
// Yapı editörü ve stok defteri gibi durum taşıyan akışlar kendi paketlerindedir
// (application/structure, application/ledger).
package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// SantiyeUseCase şantiye CRUD işlemleri.
type SantiyeUseCase struct {
	santiyeRepo repository.SantiyeRepository
}

// NewSantiyeUseCase use case'i kurar.
func NewSantiyeUseCase(santiyeRepo repository.SantiyeRepository) *SantiyeUseCase {
	return &SantiyeUseCase{santiyeRepo: santiyeRepo}
}

// CreateSantiye yeni şantiye açar.
func (uc *SantiyeUseCase) CreateSantiye(in dto.CreateSantiyeRequest) (*dto.SantiyeResponse, error) {
	if in.Ad == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	santiye := &entity.Santiye{
		ID:        uuid.New().String(),
		Ad:        in.Ad,
		Adres:     in.Adres,
		Isveren:   in.Isveren,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.santiyeRepo.Create(santiye); err != nil {
		return nil, err
	}
	return toSantiyeResponse(santiye), nil
}

// GetSantiye tek şantiye döner.
func (uc *SantiyeUseCase) GetSantiye(id string) (*dto.SantiyeResponse, error) {
	santiye, err := uc.santiyeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSantiyeResponse(santiye), nil
}

// ListSantiyeler sayfalı şantiye listesi döner.
func (uc *SantiyeUseCase) ListSantiyeler(page dto.PageRequest) (*dto.SantiyeListResponse, error) {
	page.DefaultPage()
	santiyeler, err := uc.santiyeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SantiyeResponse, 0, len(santiyeler))
	for _, s := range santiyeler {
		items = append(items, *toSantiyeResponse(s))
	}
	return &dto.SantiyeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateSantiye nil olmayan alanları günceller.
func (uc *SantiyeUseCase) UpdateSantiye(id string, in dto.UpdateSantiyeRequest) (*dto.SantiyeResponse, error) {
	santiye, err := uc.santiyeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Ad != nil {
		santiye.Ad = *in.Ad
	}
	if in.Adres != nil {
		santiye.Adres = *in.Adres
	}
	if in.Isveren != nil {
		santiye.Isveren = *in.Isveren
	}
	santiye.UpdatedAt = time.Now()
	if err := uc.santiyeRepo.Update(santiye); err != nil {
		return nil, err
	}
	return toSantiyeResponse(santiye), nil
}

// DeleteSantiye şantiyeyi siler.
func (uc *SantiyeUseCase) DeleteSantiye(id string) error {
	return uc.santiyeRepo.Delete(id)
}

func toSantiyeResponse(s *entity.Santiye) *dto.SantiyeResponse {
	return &dto.SantiyeResponse{
		ID:        s.ID,
		Ad:        s.Ad,
		Adres:     s.Adres,
		Isveren:   s.Isveren,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
