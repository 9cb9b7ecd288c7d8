package structure

import (
	"fmt"
	"sync"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
	"github.com/santiyepro/santiye-api/pkg/logger"
)

// Manager blok başına düzenleme oturumlarını yönetir. Oturumu olmayan blok
// Idle'dadır; ilk operasyon bloğu yükleyip Editing'e geçirir. Commit başarılı
// olursa oturum kapanır (Idle), hata olursa Editing'de kalır.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	repo     repository.BlokRepository
	log      *logger.Logger
}

// NewManager oturum yöneticisini kurar.
func NewManager(repo repository.BlokRepository, log *logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		repo:     repo,
		log:      log,
	}
}

// Session blok için mevcut oturumu döner, yoksa bloğu yükleyip açar.
func (m *Manager) Session(blokID string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[blokID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// Yükleme kilidin dışında yapılır; yarışta ilk kaydedilen oturum kazanır.
	blok, err := m.repo.GetByID(blokID)
	if err != nil {
		return nil, err
	}
	if blok == nil {
		return nil, fmt.Errorf("%w: blok %s", domain.ErrNotFound, blokID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[blokID]; ok {
		return s, nil
	}
	s := newSession(blok)
	m.sessions[blokID] = s
	return s, nil
}

// Commit oturumdaki yapıyı doğrulayıp tam-doküman olarak kaydeder.
// Blok başına aynı anda en fazla bir commit yürür; ikincisi ErrCommitInFlight
// ile reddedilir (çifte kaydet koruması). Kalıcılık hatasında bellek durumu
// değişmeden kalır ve oturum açık tutulur.
func (m *Manager) Commit(blokID string) error {
	m.mu.Lock()
	s, ok := m.sessions[blokID]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: blok %s için açık oturum yok", domain.ErrNotFound, blokID)
	}

	blok, err := s.beginCommit()
	if err != nil {
		return err
	}
	saveErr := m.repo.Save(blok)
	s.endCommit()
	if saveErr != nil {
		m.log.Error().Err(saveErr).Str("blok_id", blokID).Msg("blok yapısı kaydedilemedi")
		return saveErr
	}

	m.mu.Lock()
	delete(m.sessions, blokID) // Saving -> Idle
	m.mu.Unlock()

	m.log.Info().Str("blok_id", blokID).Int("kat_sayisi", len(blok.Katlar)).Msg("blok yapısı kaydedildi")
	return nil
}

// Discard oturumu kaydetmeden kapatır.
func (m *Manager) Discard(blokID string) {
	m.mu.Lock()
	delete(m.sessions, blokID)
	m.mu.Unlock()
}
