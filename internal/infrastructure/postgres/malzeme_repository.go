package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ repository.MalzemeRepository = (*MalzemeRepo)(nil)

const malzemeSutunlari = `id, depo_id, ad, kategori, birim, miktar, acilis_miktar, kritik_stok, image_url, aciklama, created_at, updated_at`

// MalzemeRepo MalzemeRepository portunun PostgreSQL uygulaması.
type MalzemeRepo struct {
	q Querier
}

// NewMalzemeRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewMalzemeRepository(q Querier) *MalzemeRepo {
	return &MalzemeRepo{q: q}
}

func scanMalzeme(row pgx.Row) (*entity.Malzeme, error) {
	var m entity.Malzeme
	err := row.Scan(
		&m.ID, &m.DepoID, &m.Ad, &m.Kategori, &m.Birim, &m.Miktar, &m.AcilisMiktar,
		&m.KritikStok, &m.ImageURL, &m.Aciklama, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan malzeme: %w", err)
	}
	return &m, nil
}

// Create yeni malzeme kartı kaydeder.
func (r *MalzemeRepo) Create(malzeme *entity.Malzeme) error {
	query := `
		INSERT INTO malzemeler (` + malzemeSutunlari + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		malzeme.ID, malzeme.DepoID, malzeme.Ad, malzeme.Kategori, malzeme.Birim,
		malzeme.Miktar, malzeme.AcilisMiktar, malzeme.KritikStok,
		malzeme.ImageURL, malzeme.Aciklama, malzeme.CreatedAt, malzeme.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert malzeme: %w", err)
	}
	return nil
}

// GetByID malzemeyi ID ile getirir.
func (r *MalzemeRepo) GetByID(id string) (*entity.Malzeme, error) {
	query := `SELECT ` + malzemeSutunlari + ` FROM malzemeler WHERE id = $1`
	return scanMalzeme(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate malzeme satırını kilitleyerek getirir (SELECT FOR UPDATE).
// Yalnızca transaction içinde anlamlıdır; stok defteri bunu eşzamanlı
// miktar güncellemelerini sıraya dizmek için kullanır.
func (r *MalzemeRepo) GetForUpdate(id string) (*entity.Malzeme, error) {
	query := `SELECT ` + malzemeSutunlari + ` FROM malzemeler WHERE id = $1 FOR UPDATE`
	return scanMalzeme(r.q.QueryRow(context.Background(), query, id))
}

// ListByDepo deponun malzemelerini ada göre sayfalı döner.
func (r *MalzemeRepo) ListByDepo(depoID string, limit, offset int) ([]*entity.Malzeme, error) {
	query := `
		SELECT ` + malzemeSutunlari + `
		FROM malzemeler WHERE depo_id = $1 ORDER BY ad LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, depoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list malzemeler: %w", err)
	}
	defer rows.Close()
	return collectMalzemeler(rows)
}

// ListKritik şantiyedeki, miktarı kritik stok eşiğinde ya da altında olan
// malzemeleri döner. Depo üzerinden şantiyeye bağlanır.
func (r *MalzemeRepo) ListKritik(santiyeID string) ([]*entity.Malzeme, error) {
	query := `
		SELECT m.id, m.depo_id, m.ad, m.kategori, m.birim, m.miktar, m.acilis_miktar,
		       m.kritik_stok, m.image_url, m.aciklama, m.created_at, m.updated_at
		FROM malzemeler m
		JOIN depolar d ON d.id = m.depo_id
		WHERE d.santiye_id = $1 AND m.miktar <= m.kritik_stok
		ORDER BY m.ad`
	rows, err := r.q.Query(context.Background(), query, santiyeID)
	if err != nil {
		return nil, fmt.Errorf("list kritik malzemeler: %w", err)
	}
	defer rows.Close()
	return collectMalzemeler(rows)
}

func collectMalzemeler(rows pgx.Rows) ([]*entity.Malzeme, error) {
	var malzemeler []*entity.Malzeme
	for rows.Next() {
		var m entity.Malzeme
		err := rows.Scan(
			&m.ID, &m.DepoID, &m.Ad, &m.Kategori, &m.Birim, &m.Miktar, &m.AcilisMiktar,
			&m.KritikStok, &m.ImageURL, &m.Aciklama, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan malzeme: %w", err)
		}
		malzemeler = append(malzemeler, &m)
	}
	return malzemeler, rows.Err()
}

// Update kart bilgilerini günceller. Miktar burada yazılmaz; stok yalnızca
// UpdateMiktar ile, hareketlerle aynı transaction içinde değişir.
func (r *MalzemeRepo) Update(malzeme *entity.Malzeme) error {
	query := `
		UPDATE malzemeler
		SET ad = $2, kategori = $3, birim = $4, kritik_stok = $5, image_url = $6, aciklama = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		malzeme.ID, malzeme.Ad, malzeme.Kategori, malzeme.Birim, malzeme.KritikStok,
		malzeme.ImageURL, malzeme.Aciklama, malzeme.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update malzeme: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateMiktar önbelleklenmiş güncel stoğu yazar.
func (r *MalzemeRepo) UpdateMiktar(id string, miktar decimal.Decimal) error {
	query := `UPDATE malzemeler SET miktar = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, miktar)
	if err != nil {
		return fmt.Errorf("update miktar: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete kartı siler; hareketleri ON DELETE CASCADE ile düşer.
func (r *MalzemeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM malzemeler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete malzeme: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
