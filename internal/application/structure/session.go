// Package structure blok yapı editörünün uygulama katmanı: blok başına bir
// düzenleme oturumu (Idle -> Editing -> Saving -> Idle) ve kat/daire
// operasyonları. Kurallar internal/domain/structure'dadır; burada oturum
// yaşam döngüsü ve kalıcılık bağlanır.
package structure

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	rules "github.com/santiyepro/santiye-api/internal/domain/structure"
)

// Session bir bloğun bellekteki düzenleme oturumudur. Oturumun varlığı
// Editing durumuna karşılık gelir; saving bayrağı Saving durumudur.
// Tüm operasyonlar katları kanonik sırada tutar, dolayısıyla kat/daire
// indeksleri görünen sırayla birebir aynıdır.
type Session struct {
	mu     sync.Mutex
	blok   *entity.Blok
	saving bool
}

func newSession(blok *entity.Blok) *Session {
	blok.Katlar = rules.SiraliKatlar(blok.Katlar)
	return &Session{blok: blok}
}

// Katlar kanonik sıradaki katların kopyasını döner.
func (s *Session) Katlar() []entity.Kat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return kopyalaKatlar(s.blok.Katlar)
}

// AddKat numaralandırma kurallarına göre yeni kat ekler ve güncel kat
// listesini kanonik sırada döner. İkinci zemin/çatı ErrDuplicateSingleton
// ile reddedilir, mevcut yapı değişmez.
func (s *Session) AddKat(tip string) ([]entity.Kat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return nil, domain.ErrCommitInFlight
	}
	kat, err := rules.YeniKat(s.blok.Katlar, tip)
	if err != nil {
		return nil, err
	}
	s.blok.Katlar = rules.SiraliKatlar(append(s.blok.Katlar, kat))
	return kopyalaKatlar(s.blok.Katlar), nil
}

// RemoveKat kanonik sıradaki indekse göre katı tüm daireleriyle siler.
// Kalan katlar yeniden numaralanmaz; numara boşlukları beklenen durumdur.
// Kullanıcı onayını almak çağıran tarafın (UI) sorumluluğudur.
func (s *Session) RemoveKat(index int) ([]entity.Kat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return nil, domain.ErrCommitInFlight
	}
	if index < 0 || index >= len(s.blok.Katlar) {
		return nil, fmt.Errorf("%w: kat indeksi %d", domain.ErrInvalidInput, index)
	}
	s.blok.Katlar = append(s.blok.Katlar[:index], s.blok.Katlar[index+1:]...)
	return kopyalaKatlar(s.blok.Katlar), nil
}

// AddDaire kata yeni daire ekler: boş kata "KAT HOLÜ 1", sonrasına
// <blokKod><katNo><sıra> kalıbında ilk boş etiket.
func (s *Session) AddDaire(katIndex int) (entity.Daire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return entity.Daire{}, domain.ErrCommitInFlight
	}
	if katIndex < 0 || katIndex >= len(s.blok.Katlar) {
		return entity.Daire{}, fmt.Errorf("%w: kat indeksi %d", domain.ErrInvalidInput, katIndex)
	}
	kat := &s.blok.Katlar[katIndex]
	daire := entity.Daire{No: rules.YeniDaireNo(*kat, s.blok.Kod), Tip: entity.DaireTipi}
	kat.Daireler = append(kat.Daireler, daire)
	return daire, nil
}

// RemoveDaire daireyi siler. Onay çağıranın sorumluluğudur.
func (s *Session) RemoveDaire(katIndex, daireIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrCommitInFlight
	}
	if katIndex < 0 || katIndex >= len(s.blok.Katlar) {
		return fmt.Errorf("%w: kat indeksi %d", domain.ErrInvalidInput, katIndex)
	}
	kat := &s.blok.Katlar[katIndex]
	if daireIndex < 0 || daireIndex >= len(kat.Daireler) {
		return fmt.Errorf("%w: daire indeksi %d", domain.ErrInvalidInput, daireIndex)
	}
	kat.Daireler = append(kat.Daireler[:daireIndex], kat.Daireler[daireIndex+1:]...)
	return nil
}

// RenameDaire daire etiketini yerinde değiştirir; sıra değişmez.
// Aynı kattaki başka bir daireyle çakışan etiket ErrDuplicateUnitNumber ile
// reddedilir; kat holü etiketleri (büyük/küçük harf fark etmeksizin) muaftır.
func (s *Session) RenameDaire(katIndex, daireIndex int, yeniNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return domain.ErrCommitInFlight
	}
	if katIndex < 0 || katIndex >= len(s.blok.Katlar) {
		return fmt.Errorf("%w: kat indeksi %d", domain.ErrInvalidInput, katIndex)
	}
	kat := &s.blok.Katlar[katIndex]
	if daireIndex < 0 || daireIndex >= len(kat.Daireler) {
		return fmt.Errorf("%w: daire indeksi %d", domain.ErrInvalidInput, daireIndex)
	}
	if rules.DaireNoCakisiyorMu(*kat, yeniNo, daireIndex) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateUnitNumber, yeniNo)
	}
	kat.Daireler[daireIndex].No = yeniNo
	return nil
}

// beginCommit Editing -> Saving geçişini dener; Saving'deyken ikinci commit reddedilir.
// Kaydedilecek bloğun doğrulanmış ve sıralanmış kopyasını döner.
func (s *Session) beginCommit() (*entity.Blok, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return nil, domain.ErrCommitInFlight
	}
	for _, kat := range s.blok.Katlar {
		for _, d := range kat.Daireler {
			if strings.TrimSpace(d.No) == "" {
				return nil, fmt.Errorf("%w: kat %s", domain.ErrIncompleteUnit, kat.No)
			}
		}
	}
	s.blok.Katlar = rules.SiraliKatlar(s.blok.Katlar)
	s.saving = true

	kopya := *s.blok
	kopya.Katlar = kopyalaKatlar(s.blok.Katlar)
	return &kopya, nil
}

// endCommit Saving durumunu kapatır. Kalıcılık hatasında bellekteki yapı
// aynen korunur; geri alma yapılmaz, çağıran aynı commit'i yineleyebilir.
func (s *Session) endCommit() {
	s.mu.Lock()
	s.saving = false
	s.mu.Unlock()
}

func kopyalaKatlar(katlar []entity.Kat) []entity.Kat {
	out := make([]entity.Kat, len(katlar))
	for i, k := range katlar {
		out[i] = k
		out[i].Daireler = append([]entity.Daire(nil), k.Daireler...)
	}
	return out
}
