package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
	"github.com/santiyepro/santiye-api/internal/domain/structure"
)

// BlokUseCase blok üst verisi CRUD işlemleri. Kat/daire yapısı buradan değil,
// yapı editörü oturumları (application/structure) üzerinden değiştirilir.
type BlokUseCase struct {
	blokRepo    repository.BlokRepository
	santiyeRepo repository.SantiyeRepository
}

// NewBlokUseCase use case'i kurar.
func NewBlokUseCase(blokRepo repository.BlokRepository, santiyeRepo repository.SantiyeRepository) *BlokUseCase {
	return &BlokUseCase{blokRepo: blokRepo, santiyeRepo: santiyeRepo}
}

// CreateBlok şantiyeye boş yapılı yeni blok ekler.
func (uc *BlokUseCase) CreateBlok(santiyeID string, in dto.CreateBlokRequest) (*dto.BlokResponse, error) {
	if in.Ad == "" || in.Kod == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.santiyeRepo.GetByID(santiyeID); err != nil {
		return nil, err
	}
	now := time.Now()
	blok := &entity.Blok{
		ID:        uuid.New().String(),
		SantiyeID: santiyeID,
		Ad:        in.Ad,
		Kod:       in.Kod,
		Katlar:    []entity.Kat{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.blokRepo.Create(blok); err != nil {
		return nil, err
	}
	return ToBlokResponse(blok), nil
}

// GetBlok tek blok döner; katlar kanonik görünüm sırasındadır.
func (uc *BlokUseCase) GetBlok(id string) (*dto.BlokResponse, error) {
	blok, err := uc.blokRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToBlokResponse(blok), nil
}

// ListBloklar şantiyenin bloklarını döner.
func (uc *BlokUseCase) ListBloklar(santiyeID string) ([]dto.BlokResponse, error) {
	bloklar, err := uc.blokRepo.ListBySantiye(santiyeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BlokResponse, 0, len(bloklar))
	for _, b := range bloklar {
		items = append(items, *ToBlokResponse(b))
	}
	return items, nil
}

// UpdateBlok ad ve kodu günceller; yapıya dokunmaz.
func (uc *BlokUseCase) UpdateBlok(id string, in dto.UpdateBlokRequest) (*dto.BlokResponse, error) {
	blok, err := uc.blokRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Ad != nil {
		blok.Ad = *in.Ad
	}
	if in.Kod != nil {
		blok.Kod = *in.Kod
	}
	blok.UpdatedAt = time.Now()
	if err := uc.blokRepo.Save(blok); err != nil {
		return nil, err
	}
	return ToBlokResponse(blok), nil
}

// DeleteBlok bloğu siler.
func (uc *BlokUseCase) DeleteBlok(id string) error {
	return uc.blokRepo.Delete(id)
}

// ToBlokResponse blok dokümanını yanıt biçimine çevirir; katları kanonik sıraya dizer.
func ToBlokResponse(b *entity.Blok) *dto.BlokResponse {
	return &dto.BlokResponse{
		ID:        b.ID,
		SantiyeID: b.SantiyeID,
		Ad:        b.Ad,
		Kod:       b.Kod,
		Katlar:    ToKatDTOs(b.Katlar),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToKatDTOs katları kanonik görünüm sırasında DTO'ya çevirir.
func ToKatDTOs(katlar []entity.Kat) []dto.KatDTO {
	sirali := structure.SiraliKatlar(katlar)
	out := make([]dto.KatDTO, 0, len(sirali))
	for _, k := range sirali {
		daireler := make([]dto.DaireDTO, 0, len(k.Daireler))
		for _, d := range k.Daireler {
			daireler = append(daireler, dto.DaireDTO{No: d.No, Tip: d.Tip})
		}
		out = append(out, dto.KatDTO{No: k.No, Tip: k.Tip, Ad: k.Ad, Daireler: daireler})
	}
	return out
}
