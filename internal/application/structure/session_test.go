package structure_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstructure "github.com/santiyepro/santiye-api/internal/application/structure"
	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/pkg/logger"
)

// fakeBlokRepo bellek içi blok deposu. saveHook ile kalıcılık hatası ya da
// yavaş kaydetme senaryoları kurgulanır.
type fakeBlokRepo struct {
	mu       sync.Mutex
	bloklar  map[string]*entity.Blok
	saveHook func(*entity.Blok) error
	saves    int
}

func newFakeBlokRepo(bloklar ...*entity.Blok) *fakeBlokRepo {
	r := &fakeBlokRepo{bloklar: make(map[string]*entity.Blok)}
	for _, b := range bloklar {
		r.bloklar[b.ID] = b
	}
	return r
}

func (r *fakeBlokRepo) Create(b *entity.Blok) error { r.bloklar[b.ID] = b; return nil }
func (r *fakeBlokRepo) GetByID(id string) (*entity.Blok, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bloklar[id]
	if !ok {
		return nil, nil
	}
	kopya := *b
	return &kopya, nil
}
func (r *fakeBlokRepo) ListBySantiye(string) ([]*entity.Blok, error) { return nil, nil }
func (r *fakeBlokRepo) Save(b *entity.Blok) error {
	if r.saveHook != nil {
		if err := r.saveHook(b); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.bloklar[b.ID] = b
	return nil
}
func (r *fakeBlokRepo) Delete(id string) error { delete(r.bloklar, id); return nil }

func testBlok(katlar ...entity.Kat) *entity.Blok {
	return &entity.Blok{ID: "blok-1", SantiyeID: "santiye-1", Ad: "A Blok", Kod: "A", Katlar: katlar}
}

func acikOturum(t *testing.T, repo *fakeBlokRepo) (*appstructure.Manager, *appstructure.Session) {
	t.Helper()
	m := appstructure.NewManager(repo, logger.Nop())
	s, err := m.Session("blok-1")
	require.NoError(t, err)
	return m, s
}

// Boş blokta zemin eklenir (no "0"); ikinci zemin DuplicateSingleton ile reddedilir.
func TestSession_IkinciZeminReddedilir(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok()))

	katlar, err := s.AddKat(entity.KatTipiZemin)
	require.NoError(t, err)
	require.Len(t, katlar, 1)
	assert.Equal(t, "0", katlar[0].No)
	assert.Equal(t, entity.KatTipiZemin, katlar[0].Tip)

	_, err = s.AddKat(entity.KatTipiZemin)
	assert.ErrorIs(t, err, domain.ErrDuplicateSingleton)

	// Reddedilen operasyon yapıyı değiştirmez.
	assert.Len(t, s.Katlar(), 1)
}

// Normal 1,2 + çatı -> görünen sıra [çatı, 2, 1].
func TestSession_CatiEnUstte(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(
		entity.Kat{No: "1", Tip: entity.KatTipiNormal},
		entity.Kat{No: "2", Tip: entity.KatTipiNormal},
	)))

	katlar, err := s.AddKat(entity.KatTipiCati)
	require.NoError(t, err)
	require.Len(t, katlar, 3)
	assert.Equal(t, entity.KatTipiCati, katlar[0].Tip)
	assert.Equal(t, "2", katlar[1].No)
	assert.Equal(t, "1", katlar[2].No)
}

// A301 mevcutken eklenen daire A302 olur.
func TestSession_SiradakiDaireNo(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(entity.Kat{
		No: "3", Tip: entity.KatTipiNormal,
		Daireler: []entity.Daire{{No: "A301", Tip: entity.DaireTipi}},
	})))

	daire, err := s.AddDaire(0)
	require.NoError(t, err)
	assert.Equal(t, "A302", daire.No)
}

// Boş kata eklenen ilk kayıt kat holüdür.
func TestSession_IlkDaireKatHolu(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(entity.Kat{No: "1", Tip: entity.KatTipiNormal})))

	daire, err := s.AddDaire(0)
	require.NoError(t, err)
	assert.Equal(t, "KAT HOLÜ 1", daire.No)
}

// Mevcut "KAT HOLÜ 1"e rağmen "kat holü 1" adına izin verilir.
func TestSession_KatHoluMuafiyeti(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(entity.Kat{
		No: "1", Tip: entity.KatTipiNormal,
		Daireler: []entity.Daire{
			{No: "KAT HOLÜ 1", Tip: entity.DaireTipi},
			{No: "A101", Tip: entity.DaireTipi},
		},
	})))

	err := s.RenameDaire(0, 1, "kat holü 1")
	require.NoError(t, err)
	assert.Equal(t, "kat holü 1", s.Katlar()[0].Daireler[1].No)
}

// Kat holü olmayan çakışan ad DuplicateUnitNumber ile reddedilir.
func TestSession_RenameCakisma(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(entity.Kat{
		No: "1", Tip: entity.KatTipiNormal,
		Daireler: []entity.Daire{
			{No: "A101", Tip: entity.DaireTipi},
			{No: "A102", Tip: entity.DaireTipi},
		},
	})))

	err := s.RenameDaire(0, 1, "A101")
	assert.ErrorIs(t, err, domain.ErrDuplicateUnitNumber)
	assert.Contains(t, err.Error(), "A101", "hata çakışan numarayı söylemeli")
	// Etiket değişmemiş olmalı.
	assert.Equal(t, "A102", s.Katlar()[0].Daireler[1].No)
}

// Kat silindiğinde kalan katlar yeniden numaralanmaz (1,2,3 -> 2 silinir -> 1,3).
func TestSession_RemoveKatBoslukBirakir(t *testing.T) {
	_, s := acikOturum(t, newFakeBlokRepo(testBlok(
		entity.Kat{No: "1", Tip: entity.KatTipiNormal},
		entity.Kat{No: "2", Tip: entity.KatTipiNormal},
		entity.Kat{No: "3", Tip: entity.KatTipiNormal},
	)))

	// Kanonik sıra [3,2,1]; indeks 1 = kat 2.
	katlar, err := s.RemoveKat(1)
	require.NoError(t, err)
	require.Len(t, katlar, 2)
	assert.Equal(t, "3", katlar[0].No)
	assert.Equal(t, "1", katlar[1].No)
}

// Boş etiketli daire varken commit IncompleteUnit ile reddedilir, kayıt yapılmaz.
func TestCommit_BosDaireReddedilir(t *testing.T) {
	repo := newFakeBlokRepo(testBlok(entity.Kat{
		No: "1", Tip: entity.KatTipiNormal,
		Daireler: []entity.Daire{{No: "  ", Tip: entity.DaireTipi}},
	}))
	m, _ := acikOturum(t, repo)

	err := m.Commit("blok-1")
	assert.ErrorIs(t, err, domain.ErrIncompleteUnit)
	assert.Zero(t, repo.saves)
}

// Başarılı commit yapıyı kanonik sırada kaydeder ve oturumu kapatır.
func TestCommit_Basarili(t *testing.T) {
	repo := newFakeBlokRepo(testBlok(
		entity.Kat{No: "B1", Tip: entity.KatTipiBodrum},
		entity.Kat{No: "2", Tip: entity.KatTipiNormal},
		entity.Kat{No: "0", Tip: entity.KatTipiZemin},
	))
	m, _ := acikOturum(t, repo)

	require.NoError(t, m.Commit("blok-1"))
	assert.Equal(t, 1, repo.saves)

	kaydedilen := repo.bloklar["blok-1"]
	assert.Equal(t, []string{"2", "0", "B1"}, []string{
		kaydedilen.Katlar[0].No, kaydedilen.Katlar[1].No, kaydedilen.Katlar[2].No,
	})

	// Oturum kapandı; ikinci commit açık oturum bulamaz.
	err := m.Commit("blok-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Saving sürerken ikinci commit ErrCommitInFlight ile reddedilir (çifte kaydet).
func TestCommit_AyniAndaIkinciCommitReddedilir(t *testing.T) {
	repo := newFakeBlokRepo(testBlok(entity.Kat{No: "1", Tip: entity.KatTipiNormal}))
	basladi := make(chan struct{})
	devam := make(chan struct{})
	repo.saveHook = func(*entity.Blok) error {
		close(basladi)
		<-devam
		return nil
	}
	m, _ := acikOturum(t, repo)

	sonuc := make(chan error, 1)
	go func() { sonuc <- m.Commit("blok-1") }()
	<-basladi

	err := m.Commit("blok-1")
	assert.ErrorIs(t, err, domain.ErrCommitInFlight)

	close(devam)
	require.NoError(t, <-sonuc)
}

// Kalıcılık hatasında bellekteki oturum aynen kalır; aynı commit yinelenebilir.
func TestCommit_KalicilikHatasiDurumuBozmaz(t *testing.T) {
	repo := newFakeBlokRepo(testBlok(entity.Kat{No: "1", Tip: entity.KatTipiNormal}))
	kalici := errors.New("baglanti koptu")
	repo.saveHook = func(*entity.Blok) error { return kalici }
	m, s := acikOturum(t, repo)

	err := m.Commit("blok-1")
	assert.ErrorIs(t, err, kalici)
	assert.Len(t, s.Katlar(), 1, "bellekteki yapı korunmalı")

	// Backend düzelince aynı commit geçer.
	repo.saveHook = nil
	require.NoError(t, m.Commit("blok-1"))
}
