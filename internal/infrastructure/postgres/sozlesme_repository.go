package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ repository.SozlesmeRepository = (*SozlesmeRepo)(nil)

// SozlesmeRepo SozlesmeRepository portunun PostgreSQL uygulaması.
type SozlesmeRepo struct {
	q Querier
}

// NewSozlesmeRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewSozlesmeRepository(q Querier) *SozlesmeRepo {
	return &SozlesmeRepo{q: q}
}

// Create yeni sözleşme kaydeder.
func (r *SozlesmeRepo) Create(sozlesme *entity.Sozlesme) error {
	query := `
		INSERT INTO sozlesmeler (id, santiye_id, taraf, konu, tutar, baslangic, bitis, dosya_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sozlesme.ID, sozlesme.SantiyeID, sozlesme.Taraf, sozlesme.Konu, sozlesme.Tutar,
		sozlesme.Baslangic, sozlesme.Bitis, sozlesme.DosyaURL, sozlesme.CreatedAt, sozlesme.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sozlesme: %w", err)
	}
	return nil
}

// GetByID sözleşmeyi ID ile getirir.
func (r *SozlesmeRepo) GetByID(id string) (*entity.Sozlesme, error) {
	query := `
		SELECT id, santiye_id, taraf, konu, tutar, baslangic, bitis, dosya_url, created_at, updated_at
		FROM sozlesmeler WHERE id = $1`
	var s entity.Sozlesme
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SantiyeID, &s.Taraf, &s.Konu, &s.Tutar, &s.Baslangic, &s.Bitis, &s.DosyaURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sozlesme: %w", err)
	}
	return &s, nil
}

// ListBySantiye şantiyenin sözleşmelerini başlangıç tarihine göre sayfalı döner.
func (r *SozlesmeRepo) ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Sozlesme, error) {
	query := `
		SELECT id, santiye_id, taraf, konu, tutar, baslangic, bitis, dosya_url, created_at, updated_at
		FROM sozlesmeler WHERE santiye_id = $1
		ORDER BY baslangic DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, santiyeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sozlesmeler: %w", err)
	}
	defer rows.Close()

	var sozlesmeler []*entity.Sozlesme
	for rows.Next() {
		var s entity.Sozlesme
		if err := rows.Scan(&s.ID, &s.SantiyeID, &s.Taraf, &s.Konu, &s.Tutar, &s.Baslangic, &s.Bitis, &s.DosyaURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sozlesme: %w", err)
		}
		sozlesmeler = append(sozlesmeler, &s)
	}
	return sozlesmeler, rows.Err()
}

// Update sözleşmeyi günceller.
func (r *SozlesmeRepo) Update(sozlesme *entity.Sozlesme) error {
	query := `
		UPDATE sozlesmeler
		SET taraf = $2, konu = $3, tutar = $4, baslangic = $5, bitis = $6, dosya_url = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sozlesme.ID, sozlesme.Taraf, sozlesme.Konu, sozlesme.Tutar,
		sozlesme.Baslangic, sozlesme.Bitis, sozlesme.DosyaURL, sozlesme.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sozlesme: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete sözleşmeyi siler.
func (r *SozlesmeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sozlesmeler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sozlesme: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
