package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// SozlesmeUseCase taşeron/tedarik sözleşmeleri CRUD işlemleri.
type SozlesmeUseCase struct {
	sozlesmeRepo repository.SozlesmeRepository
	santiyeRepo  repository.SantiyeRepository
}

// NewSozlesmeUseCase use case'i kurar.
func NewSozlesmeUseCase(sozlesmeRepo repository.SozlesmeRepository, santiyeRepo repository.SantiyeRepository) *SozlesmeUseCase {
	return &SozlesmeUseCase{sozlesmeRepo: sozlesmeRepo, santiyeRepo: santiyeRepo}
}

// CreateSozlesme şantiyeye sözleşme ekler.
func (uc *SozlesmeUseCase) CreateSozlesme(santiyeID string, in dto.CreateSozlesmeRequest) (*dto.SozlesmeResponse, error) {
	if in.Taraf == "" || in.Konu == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tutar.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Bitis.IsZero() && !in.Baslangic.IsZero() && in.Bitis.Before(in.Baslangic) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.santiyeRepo.GetByID(santiyeID); err != nil {
		return nil, err
	}
	now := time.Now()
	sozlesme := &entity.Sozlesme{
		ID:        uuid.New().String(),
		SantiyeID: santiyeID,
		Taraf:     in.Taraf,
		Konu:      in.Konu,
		Tutar:     in.Tutar,
		Baslangic: in.Baslangic,
		Bitis:     in.Bitis,
		DosyaURL:  in.DosyaURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sozlesmeRepo.Create(sozlesme); err != nil {
		return nil, err
	}
	return toSozlesmeResponse(sozlesme), nil
}

// GetSozlesme tek sözleşme döner.
func (uc *SozlesmeUseCase) GetSozlesme(id string) (*dto.SozlesmeResponse, error) {
	sozlesme, err := uc.sozlesmeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSozlesmeResponse(sozlesme), nil
}

// ListSozlesmeler şantiyenin sözleşmelerini sayfalı döner.
func (uc *SozlesmeUseCase) ListSozlesmeler(santiyeID string, page dto.PageRequest) (*dto.SozlesmeListResponse, error) {
	page.DefaultPage()
	sozlesmeler, err := uc.sozlesmeRepo.ListBySantiye(santiyeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SozlesmeResponse, 0, len(sozlesmeler))
	for _, s := range sozlesmeler {
		items = append(items, *toSozlesmeResponse(s))
	}
	return &dto.SozlesmeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateSozlesme nil olmayan alanları günceller.
func (uc *SozlesmeUseCase) UpdateSozlesme(id string, in dto.UpdateSozlesmeRequest) (*dto.SozlesmeResponse, error) {
	sozlesme, err := uc.sozlesmeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Taraf != nil {
		sozlesme.Taraf = *in.Taraf
	}
	if in.Konu != nil {
		sozlesme.Konu = *in.Konu
	}
	if in.Tutar != nil {
		if in.Tutar.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sozlesme.Tutar = *in.Tutar
	}
	if in.Baslangic != nil {
		sozlesme.Baslangic = *in.Baslangic
	}
	if in.Bitis != nil {
		sozlesme.Bitis = *in.Bitis
	}
	if in.DosyaURL != nil {
		sozlesme.DosyaURL = *in.DosyaURL
	}
	if !sozlesme.Bitis.IsZero() && !sozlesme.Baslangic.IsZero() && sozlesme.Bitis.Before(sozlesme.Baslangic) {
		return nil, domain.ErrInvalidInput
	}
	sozlesme.UpdatedAt = time.Now()
	if err := uc.sozlesmeRepo.Update(sozlesme); err != nil {
		return nil, err
	}
	return toSozlesmeResponse(sozlesme), nil
}

// DeleteSozlesme sözleşmeyi siler.
func (uc *SozlesmeUseCase) DeleteSozlesme(id string) error {
	return uc.sozlesmeRepo.Delete(id)
}

func toSozlesmeResponse(s *entity.Sozlesme) *dto.SozlesmeResponse {
	return &dto.SozlesmeResponse{
		ID:        s.ID,
		SantiyeID: s.SantiyeID,
		Taraf:     s.Taraf,
		Konu:      s.Konu,
		Tutar:     s.Tutar,
		Baslangic: s.Baslangic,
		Bitis:     s.Bitis,
		DosyaURL:  s.DosyaURL,
		CreatedAt: s.CreatedAt,
	}
}
