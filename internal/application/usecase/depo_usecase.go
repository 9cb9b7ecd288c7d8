package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// DepoUseCase depo CRUD işlemleri.
type DepoUseCase struct {
	depoRepo    repository.DepoRepository
	santiyeRepo repository.SantiyeRepository
}

// NewDepoUseCase use case'i kurar.
func NewDepoUseCase(depoRepo repository.DepoRepository, santiyeRepo repository.SantiyeRepository) *DepoUseCase {
	return &DepoUseCase{depoRepo: depoRepo, santiyeRepo: santiyeRepo}
}

// CreateDepo şantiyeye yeni depo ekler.
func (uc *DepoUseCase) CreateDepo(santiyeID string, in dto.CreateDepoRequest) (*dto.DepoResponse, error) {
	if in.Ad == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.santiyeRepo.GetByID(santiyeID); err != nil {
		return nil, err
	}
	now := time.Now()
	depo := &entity.Depo{
		ID:        uuid.New().String(),
		SantiyeID: santiyeID,
		Ad:        in.Ad,
		Sorumlu:   in.Sorumlu,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.depoRepo.Create(depo); err != nil {
		return nil, err
	}
	return toDepoResponse(depo), nil
}

// GetDepo tek depo döner.
func (uc *DepoUseCase) GetDepo(id string) (*dto.DepoResponse, error) {
	depo, err := uc.depoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toDepoResponse(depo), nil
}

// ListDepolar şantiyenin depolarını döner.
func (uc *DepoUseCase) ListDepolar(santiyeID string) ([]dto.DepoResponse, error) {
	depolar, err := uc.depoRepo.ListBySantiye(santiyeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepoResponse, 0, len(depolar))
	for _, d := range depolar {
		items = append(items, *toDepoResponse(d))
	}
	return items, nil
}

// UpdateDepo nil olmayan alanları günceller.
func (uc *DepoUseCase) UpdateDepo(id string, in dto.UpdateDepoRequest) (*dto.DepoResponse, error) {
	depo, err := uc.depoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Ad != nil {
		depo.Ad = *in.Ad
	}
	if in.Sorumlu != nil {
		depo.Sorumlu = *in.Sorumlu
	}
	depo.UpdatedAt = time.Now()
	if err := uc.depoRepo.Update(depo); err != nil {
		return nil, err
	}
	return toDepoResponse(depo), nil
}

// DeleteDepo depoyu siler.
func (uc *DepoUseCase) DeleteDepo(id string) error {
	return uc.depoRepo.Delete(id)
}

func toDepoResponse(d *entity.Depo) *dto.DepoResponse {
	return &dto.DepoResponse{
		ID:        d.ID,
		SantiyeID: d.SantiyeID,
		Ad:        d.Ad,
		Sorumlu:   d.Sorumlu,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
