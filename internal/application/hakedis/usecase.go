// Package hakedis dönemsel hakediş (progress billing) raporlarını yönetir:
// şantiye içinde ardışık numaralandırma, kalem toplamları ve PDF çıktısı.
package hakedis

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// donemDeseni "YYYY-MM" biçimini zorlar.
var donemDeseni = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// HakedisUseCase hakediş CRUD + PDF işlemleri.
type HakedisUseCase struct {
	hakedisRepo repository.HakedisRepository
	santiyeRepo repository.SantiyeRepository
	pdf         PDFGenerator
}

// NewHakedisUseCase use case'i kurar.
func NewHakedisUseCase(hakedisRepo repository.HakedisRepository, santiyeRepo repository.SantiyeRepository, pdf PDFGenerator) *HakedisUseCase {
	return &HakedisUseCase{hakedisRepo: hakedisRepo, santiyeRepo: santiyeRepo, pdf: pdf}
}

func toKalemler(in []dto.HakedisKalemiDTO) ([]entity.HakedisKalemi, error) {
	kalemler := make([]entity.HakedisKalemi, 0, len(in))
	for _, k := range in {
		if k.Aciklama == "" || !k.Miktar.IsPositive() || k.BirimFiyat.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		kalemler = append(kalemler, entity.HakedisKalemi{
			Aciklama:   k.Aciklama,
			Birim:      k.Birim,
			Miktar:     k.Miktar,
			BirimFiyat: k.BirimFiyat,
		})
	}
	return kalemler, nil
}

// CreateHakedis yeni hakediş açar; No şantiye içinde bir sonraki sıra numarasıdır.
func (uc *HakedisUseCase) CreateHakedis(santiyeID string, in dto.CreateHakedisRequest) (*dto.HakedisResponse, error) {
	if !donemDeseni.MatchString(in.Donem) {
		return nil, domain.ErrInvalidInput
	}
	kalemler, err := toKalemler(in.Kalemler)
	if err != nil {
		return nil, err
	}
	if _, err := uc.santiyeRepo.GetByID(santiyeID); err != nil {
		return nil, err
	}
	no, err := uc.hakedisRepo.NextNo(santiyeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	hakedis := &entity.Hakedis{
		ID:        uuid.New().String(),
		SantiyeID: santiyeID,
		No:        no,
		Donem:     in.Donem,
		Aciklama:  in.Aciklama,
		Kalemler:  kalemler,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.hakedisRepo.Create(hakedis); err != nil {
		return nil, err
	}
	return toHakedisResponse(hakedis), nil
}

// GetHakedis tek hakediş döner.
func (uc *HakedisUseCase) GetHakedis(id string) (*dto.HakedisResponse, error) {
	hakedis, err := uc.hakedisRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toHakedisResponse(hakedis), nil
}

// ListHakedisler şantiyenin hakedişlerini sayfalı döner.
func (uc *HakedisUseCase) ListHakedisler(santiyeID string, page dto.PageRequest) (*dto.HakedisListResponse, error) {
	page.DefaultPage()
	hakedisler, err := uc.hakedisRepo.ListBySantiye(santiyeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HakedisResponse, 0, len(hakedisler))
	for _, h := range hakedisler {
		items = append(items, *toHakedisResponse(h))
	}
	return &dto.HakedisListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateHakedis açıklamayı ve kalem listesini günceller. Kalemler tam liste
// olarak değiştirilir; No ve Donem değişmez.
func (uc *HakedisUseCase) UpdateHakedis(id string, in dto.UpdateHakedisRequest) (*dto.HakedisResponse, error) {
	hakedis, err := uc.hakedisRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Aciklama != nil {
		hakedis.Aciklama = *in.Aciklama
	}
	if in.Kalemler != nil {
		kalemler, err := toKalemler(*in.Kalemler)
		if err != nil {
			return nil, err
		}
		hakedis.Kalemler = kalemler
	}
	hakedis.UpdatedAt = time.Now()
	if err := uc.hakedisRepo.Update(hakedis); err != nil {
		return nil, err
	}
	return toHakedisResponse(hakedis), nil
}

// DeleteHakedis hakedişi siler. Numara geri alınmaz; silinen numara boşlukta kalır.
func (uc *HakedisUseCase) DeleteHakedis(id string) error {
	return uc.hakedisRepo.Delete(id)
}

// GeneratePDF hakedişin PDF raporunu üretir ve indirme için dosya adını döner.
func (uc *HakedisUseCase) GeneratePDF(id string) ([]byte, string, error) {
	hakedis, err := uc.hakedisRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	santiye, err := uc.santiyeRepo.GetByID(hakedis.SantiyeID)
	if err != nil {
		return nil, "", err
	}
	raw, err := uc.pdf.HakedisPDF(santiye, hakedis)
	if err != nil {
		return nil, "", err
	}
	isim := "hakedis-" + hakedis.Donem + ".pdf"
	return raw, isim, nil
}

func toHakedisResponse(h *entity.Hakedis) *dto.HakedisResponse {
	kalemler := make([]dto.HakedisKalemiDTO, 0, len(h.Kalemler))
	for _, k := range h.Kalemler {
		kalemler = append(kalemler, dto.HakedisKalemiDTO{
			Aciklama:   k.Aciklama,
			Birim:      k.Birim,
			Miktar:     k.Miktar,
			BirimFiyat: k.BirimFiyat,
			Tutar:      k.Tutar(),
		})
	}
	return &dto.HakedisResponse{
		ID:        h.ID,
		SantiyeID: h.SantiyeID,
		No:        h.No,
		Donem:     h.Donem,
		Aciklama:  h.Aciklama,
		Kalemler:  kalemler,
		Toplam:    h.Toplam(),
		CreatedAt: h.CreatedAt,
	}
}
