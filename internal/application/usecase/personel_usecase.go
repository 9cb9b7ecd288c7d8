package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// PersonelUseCase personel kartları ve günlük puantaj.
type PersonelUseCase struct {
	personelRepo repository.PersonelRepository
	puantajRepo  repository.PuantajRepository
	santiyeRepo  repository.SantiyeRepository
}

// NewPersonelUseCase use case'i kurar.
func NewPersonelUseCase(personelRepo repository.PersonelRepository, puantajRepo repository.PuantajRepository, santiyeRepo repository.SantiyeRepository) *PersonelUseCase {
	return &PersonelUseCase{personelRepo: personelRepo, puantajRepo: puantajRepo, santiyeRepo: santiyeRepo}
}

// CreatePersonel şantiyeye personel kaydeder.
func (uc *PersonelUseCase) CreatePersonel(santiyeID string, in dto.CreatePersonelRequest) (*dto.PersonelResponse, error) {
	if in.Ad == "" || in.Soyad == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Yevmiye.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.santiyeRepo.GetByID(santiyeID); err != nil {
		return nil, err
	}
	now := time.Now()
	personel := &entity.Personel{
		ID:        uuid.New().String(),
		SantiyeID: santiyeID,
		Ad:        in.Ad,
		Soyad:     in.Soyad,
		Gorev:     in.Gorev,
		Telefon:   in.Telefon,
		Yevmiye:   in.Yevmiye,
		Aktif:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.personelRepo.Create(personel); err != nil {
		return nil, err
	}
	return toPersonelResponse(personel), nil
}

// GetPersonel tek personel döner.
func (uc *PersonelUseCase) GetPersonel(id string) (*dto.PersonelResponse, error) {
	personel, err := uc.personelRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPersonelResponse(personel), nil
}

// ListPersoneller şantiye personelini sayfalı döner.
func (uc *PersonelUseCase) ListPersoneller(santiyeID string, page dto.PageRequest) (*dto.PersonelListResponse, error) {
	page.DefaultPage()
	personeller, err := uc.personelRepo.ListBySantiye(santiyeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonelResponse, 0, len(personeller))
	for _, p := range personeller {
		items = append(items, *toPersonelResponse(p))
	}
	return &dto.PersonelListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdatePersonel nil olmayan alanları günceller.
func (uc *PersonelUseCase) UpdatePersonel(id string, in dto.UpdatePersonelRequest) (*dto.PersonelResponse, error) {
	personel, err := uc.personelRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Ad != nil {
		personel.Ad = *in.Ad
	}
	if in.Soyad != nil {
		personel.Soyad = *in.Soyad
	}
	if in.Gorev != nil {
		personel.Gorev = *in.Gorev
	}
	if in.Telefon != nil {
		personel.Telefon = *in.Telefon
	}
	if in.Yevmiye != nil {
		if in.Yevmiye.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		personel.Yevmiye = *in.Yevmiye
	}
	if in.Aktif != nil {
		personel.Aktif = *in.Aktif
	}
	personel.UpdatedAt = time.Now()
	if err := uc.personelRepo.Update(personel); err != nil {
		return nil, err
	}
	return toPersonelResponse(personel), nil
}

// DeletePersonel kaydı siler.
func (uc *PersonelUseCase) DeletePersonel(id string) error {
	return uc.personelRepo.Delete(id)
}

// KaydetPuantaj günün devam kaydını yazar; aynı güne ikinci kayıt öncekini
// günceller (personel + tarih tekil).
func (uc *PersonelUseCase) KaydetPuantaj(personelID string, in dto.PuantajRequest) (*dto.PuantajResponse, error) {
	switch in.Durum {
	case entity.PuantajTam, entity.PuantajYarim, entity.PuantajYok:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Mesai.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Tarih.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.personelRepo.GetByID(personelID); err != nil {
		return nil, err
	}
	puantaj := &entity.Puantaj{
		ID:         uuid.New().String(),
		PersonelID: personelID,
		Tarih:      gunBasi(in.Tarih),
		Durum:      in.Durum,
		Mesai:      in.Mesai,
		Not:        in.Not,
		CreatedAt:  time.Now(),
	}
	if err := uc.puantajRepo.Upsert(puantaj); err != nil {
		return nil, err
	}
	return toPuantajResponse(puantaj), nil
}

// AylikPuantaj personelin bir aydaki tüm kayıtlarını döner.
func (uc *PersonelUseCase) AylikPuantaj(personelID string, yil, ay int) (*dto.PuantajAyResponse, error) {
	if yil < 2000 || ay < 1 || ay > 12 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.personelRepo.GetByID(personelID); err != nil {
		return nil, err
	}
	kayitlar, err := uc.puantajRepo.ListByPersonelAy(personelID, yil, ay)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PuantajResponse, 0, len(kayitlar))
	for _, p := range kayitlar {
		items = append(items, *toPuantajResponse(p))
	}
	return &dto.PuantajAyResponse{PersonelID: personelID, Yil: yil, Ay: ay, Items: items}, nil
}

// gunBasi tarihi gün hassasiyetine indirger; puantaj tekilliği gün üzerindendir.
func gunBasi(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toPersonelResponse(p *entity.Personel) *dto.PersonelResponse {
	return &dto.PersonelResponse{
		ID:        p.ID,
		SantiyeID: p.SantiyeID,
		Ad:        p.Ad,
		Soyad:     p.Soyad,
		Gorev:     p.Gorev,
		Telefon:   p.Telefon,
		Yevmiye:   p.Yevmiye,
		Aktif:     p.Aktif,
		CreatedAt: p.CreatedAt,
	}
}

func toPuantajResponse(p *entity.Puantaj) *dto.PuantajResponse {
	return &dto.PuantajResponse{
		ID:         p.ID,
		PersonelID: p.PersonelID,
		Tarih:      p.Tarih,
		Durum:      p.Durum,
		Mesai:      p.Mesai,
		Not:        p.Not,
	}
}
