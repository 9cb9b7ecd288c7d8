package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ repository.HakedisRepository = (*HakedisRepo)(nil)

// HakedisRepo HakedisRepository portunun PostgreSQL uygulaması.
// Kalemler hakedişle birlikte JSONB doküman olarak saklanır.
type HakedisRepo struct {
	q Querier
}

// NewHakedisRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewHakedisRepository(q Querier) *HakedisRepo {
	return &HakedisRepo{q: q}
}

// kalemDoc JSONB'deki kalem kablo biçimi; decimal alanlar string taşınır.
type kalemDoc struct {
	Aciklama   string          `json:"aciklama"`
	Birim      string          `json:"birim"`
	Miktar     decimal.Decimal `json:"miktar"`
	BirimFiyat decimal.Decimal `json:"birim_fiyat"`
}

func encodeKalemler(kalemler []entity.HakedisKalemi) ([]byte, error) {
	docs := make([]kalemDoc, 0, len(kalemler))
	for _, k := range kalemler {
		docs = append(docs, kalemDoc{Aciklama: k.Aciklama, Birim: k.Birim, Miktar: k.Miktar, BirimFiyat: k.BirimFiyat})
	}
	return json.Marshal(docs)
}

func decodeKalemler(raw []byte) ([]entity.HakedisKalemi, error) {
	var docs []kalemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode kalemler: %w", err)
	}
	kalemler := make([]entity.HakedisKalemi, 0, len(docs))
	for _, d := range docs {
		kalemler = append(kalemler, entity.HakedisKalemi{Aciklama: d.Aciklama, Birim: d.Birim, Miktar: d.Miktar, BirimFiyat: d.BirimFiyat})
	}
	return kalemler, nil
}

// Create yeni hakediş kaydeder.
func (r *HakedisRepo) Create(hakedis *entity.Hakedis) error {
	raw, err := encodeKalemler(hakedis.Kalemler)
	if err != nil {
		return fmt.Errorf("encode kalemler: %w", err)
	}
	query := `
		INSERT INTO hakedisler (id, santiye_id, no, donem, aciklama, kalemler, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		hakedis.ID, hakedis.SantiyeID, hakedis.No, hakedis.Donem,
		hakedis.Aciklama, raw, hakedis.CreatedAt, hakedis.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert hakedis: %w", err)
	}
	return nil
}

// GetByID hakedişi kalemleriyle birlikte getirir.
func (r *HakedisRepo) GetByID(id string) (*entity.Hakedis, error) {
	query := `
		SELECT id, santiye_id, no, donem, aciklama, kalemler, created_at, updated_at
		FROM hakedisler WHERE id = $1`
	var h entity.Hakedis
	var raw []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.SantiyeID, &h.No, &h.Donem, &h.Aciklama, &raw, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hakedis: %w", err)
	}
	if h.Kalemler, err = decodeKalemler(raw); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListBySantiye hakedişleri numara sırasına göre (en yeni önce) sayfalı döner.
func (r *HakedisRepo) ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Hakedis, error) {
	query := `
		SELECT id, santiye_id, no, donem, aciklama, kalemler, created_at, updated_at
		FROM hakedisler WHERE santiye_id = $1
		ORDER BY no DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, santiyeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list hakedisler: %w", err)
	}
	defer rows.Close()

	var hakedisler []*entity.Hakedis
	for rows.Next() {
		var h entity.Hakedis
		var raw []byte
		if err := rows.Scan(&h.ID, &h.SantiyeID, &h.No, &h.Donem, &h.Aciklama, &raw, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hakedis: %w", err)
		}
		if h.Kalemler, err = decodeKalemler(raw); err != nil {
			return nil, err
		}
		hakedisler = append(hakedisler, &h)
	}
	return hakedisler, rows.Err()
}

// NextNo şantiyedeki bir sonraki hakediş numarasını döner. Silinen numaralar
// geri verilmez: sıra her zaman en büyük numaradan devam eder.
func (r *HakedisRepo) NextNo(santiyeID string) (int, error) {
	var no int
	query := `SELECT COALESCE(MAX(no), 0) + 1 FROM hakedisler WHERE santiye_id = $1`
	if err := r.q.QueryRow(context.Background(), query, santiyeID).Scan(&no); err != nil {
		return 0, fmt.Errorf("next hakedis no: %w", err)
	}
	return no, nil
}

// Update açıklama ve kalemleri günceller; no ve donem değişmez.
func (r *HakedisRepo) Update(hakedis *entity.Hakedis) error {
	raw, err := encodeKalemler(hakedis.Kalemler)
	if err != nil {
		return fmt.Errorf("encode kalemler: %w", err)
	}
	query := `
		UPDATE hakedisler SET aciklama = $2, kalemler = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		hakedis.ID, hakedis.Aciklama, raw, hakedis.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hakedis: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hakedişi siler.
func (r *HakedisRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM hakedisler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hakedis: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
