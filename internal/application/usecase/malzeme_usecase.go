package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/santiyepro/santiye-api/internal/application/dto"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
	"github.com/santiyepro/santiye-api/pkg/logger"
)

// kritikStokTTL kritik stok raporunun önbellek ömrü. Rapor panoda sık
// yenilendiği için kısa tutulur; ayrı bir geçersiz kılma akışı yoktur.
const kritikStokTTL = 30 * time.Second

// MalzemeUseCase malzeme kartı CRUD işlemleri ve kritik stok raporu.
// Miktar alanı burada asla doğrudan yazılmaz; stok yalnızca hareketler
// üzerinden (application/ledger) değişir.
type MalzemeUseCase struct {
	malzemeRepo repository.MalzemeRepository
	depoRepo    repository.DepoRepository
	cache       Cache
	log         *logger.Logger
}

// NewMalzemeUseCase use case'i kurar.
func NewMalzemeUseCase(malzemeRepo repository.MalzemeRepository, depoRepo repository.DepoRepository, cache Cache, log *logger.Logger) *MalzemeUseCase {
	return &MalzemeUseCase{malzemeRepo: malzemeRepo, depoRepo: depoRepo, cache: cache, log: log}
}

func gecerliKategori(k string) bool {
	switch k {
	case entity.KategoriInsaat, entity.KategoriElektrik, entity.KategoriMekanik,
		entity.KategoriBoya, entity.KategoriHirdavat, entity.KategoriDiger:
		return true
	}
	return false
}

// CreateMalzeme depoya yeni malzeme kartı açar; güncel miktar açılış miktarından başlar.
func (uc *MalzemeUseCase) CreateMalzeme(depoID string, in dto.CreateMalzemeRequest) (*dto.MalzemeResponse, error) {
	if in.Ad == "" || in.Birim == "" || !gecerliKategori(in.Kategori) {
		return nil, domain.ErrInvalidInput
	}
	if in.AcilisMiktar.IsNegative() || in.KritikStok.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.depoRepo.GetByID(depoID); err != nil {
		return nil, err
	}
	now := time.Now()
	malzeme := &entity.Malzeme{
		ID:           uuid.New().String(),
		DepoID:       depoID,
		Ad:           in.Ad,
		Kategori:     in.Kategori,
		Birim:        in.Birim,
		Miktar:       in.AcilisMiktar,
		AcilisMiktar: in.AcilisMiktar,
		KritikStok:   in.KritikStok,
		ImageURL:     in.ImageURL,
		Aciklama:     in.Aciklama,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.malzemeRepo.Create(malzeme); err != nil {
		return nil, err
	}
	return toMalzemeResponse(malzeme), nil
}

// GetMalzeme tek malzeme döner.
func (uc *MalzemeUseCase) GetMalzeme(id string) (*dto.MalzemeResponse, error) {
	malzeme, err := uc.malzemeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toMalzemeResponse(malzeme), nil
}

// ListMalzemeler deponun malzemelerini sayfalı döner.
func (uc *MalzemeUseCase) ListMalzemeler(depoID string, page dto.PageRequest) (*dto.MalzemeListResponse, error) {
	page.DefaultPage()
	malzemeler, err := uc.malzemeRepo.ListByDepo(depoID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MalzemeResponse, 0, len(malzemeler))
	for _, m := range malzemeler {
		items = append(items, *toMalzemeResponse(m))
	}
	return &dto.MalzemeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateMalzeme kart bilgilerini günceller. Miktar bilinçli olarak kapsam dışıdır.
func (uc *MalzemeUseCase) UpdateMalzeme(id string, in dto.UpdateMalzemeRequest) (*dto.MalzemeResponse, error) {
	malzeme, err := uc.malzemeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Ad != nil {
		malzeme.Ad = *in.Ad
	}
	if in.Kategori != nil {
		if !gecerliKategori(*in.Kategori) {
			return nil, domain.ErrInvalidInput
		}
		malzeme.Kategori = *in.Kategori
	}
	if in.Birim != nil {
		malzeme.Birim = *in.Birim
	}
	if in.KritikStok != nil {
		if in.KritikStok.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		malzeme.KritikStok = *in.KritikStok
	}
	if in.ImageURL != nil {
		malzeme.ImageURL = *in.ImageURL
	}
	if in.Aciklama != nil {
		malzeme.Aciklama = *in.Aciklama
	}
	malzeme.UpdatedAt = time.Now()
	if err := uc.malzemeRepo.Update(malzeme); err != nil {
		return nil, err
	}
	return toMalzemeResponse(malzeme), nil
}

// DeleteMalzeme kartı hareket geçmişiyle birlikte siler.
func (uc *MalzemeUseCase) DeleteMalzeme(id string) error {
	return uc.malzemeRepo.Delete(id)
}

// ListKritik şantiyedeki kritik seviyedeki malzemeleri döner. Sonuç kısa
// süreli Redis önbelleğinden servis edilir; önbellek hatası raporu engellemez.
func (uc *MalzemeUseCase) ListKritik(ctx context.Context, santiyeID string) ([]dto.MalzemeResponse, error) {
	key := "kritik-stok:" + santiyeID
	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.log.Warn().Err(err).Str("santiye_id", santiyeID).Msg("kritik stok önbelleği okunamadı")
	} else if ok {
		var items []dto.MalzemeResponse
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		uc.log.Warn().Str("santiye_id", santiyeID).Msg("kritik stok önbelleği bozuk, yok sayılıyor")
	}

	malzemeler, err := uc.malzemeRepo.ListKritik(santiyeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MalzemeResponse, 0, len(malzemeler))
	for _, m := range malzemeler {
		items = append(items, *toMalzemeResponse(m))
	}
	if raw, err := json.Marshal(items); err == nil {
		if err := uc.cache.Set(ctx, key, string(raw), kritikStokTTL); err != nil {
			uc.log.Warn().Err(err).Str("santiye_id", santiyeID).Msg("kritik stok önbelleği yazılamadı")
		}
	}
	return items, nil
}

func toMalzemeResponse(m *entity.Malzeme) *dto.MalzemeResponse {
	return &dto.MalzemeResponse{
		ID:           m.ID,
		DepoID:       m.DepoID,
		Ad:           m.Ad,
		Kategori:     m.Kategori,
		Birim:        m.Birim,
		Miktar:       m.Miktar,
		AcilisMiktar: m.AcilisMiktar,
		KritikStok:   m.KritikStok,
		Kritik:       m.KritikSeviyede(),
		ImageURL:     m.ImageURL,
		Aciklama:     m.Aciklama,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
