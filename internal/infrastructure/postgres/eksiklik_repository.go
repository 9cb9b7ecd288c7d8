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

var _ repository.EksiklikRepository = (*EksiklikRepo)(nil)

// EksiklikRepo EksiklikRepository portunun PostgreSQL uygulaması.
type EksiklikRepo struct {
	q Querier
}

// NewEksiklikRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewEksiklikRepository(q Querier) *EksiklikRepo {
	return &EksiklikRepo{q: q}
}

// Create yeni eksiklik kaydeder.
func (r *EksiklikRepo) Create(eksiklik *entity.Eksiklik) error {
	query := `
		INSERT INTO eksiklikler (id, blok_id, kat_no, daire_no, aciklama, durum, foto_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		eksiklik.ID, eksiklik.BlokID, eksiklik.KatNo, eksiklik.DaireNo,
		eksiklik.Aciklama, eksiklik.Durum, eksiklik.FotoURL, eksiklik.CreatedAt, eksiklik.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert eksiklik: %w", err)
	}
	return nil
}

// GetByID eksikliği ID ile getirir.
func (r *EksiklikRepo) GetByID(id string) (*entity.Eksiklik, error) {
	query := `
		SELECT id, blok_id, kat_no, daire_no, aciklama, durum, foto_url, created_at, updated_at
		FROM eksiklikler WHERE id = $1`
	var e entity.Eksiklik
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.BlokID, &e.KatNo, &e.DaireNo, &e.Aciklama, &e.Durum, &e.FotoURL, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get eksiklik: %w", err)
	}
	return &e, nil
}

// ListByBlok blok eksikliklerini döner; durum boş değilse ona göre süzer.
func (r *EksiklikRepo) ListByBlok(blokID string, durum string, limit, offset int) ([]*entity.Eksiklik, error) {
	query := `
		SELECT id, blok_id, kat_no, daire_no, aciklama, durum, foto_url, created_at, updated_at
		FROM eksiklikler
		WHERE blok_id = $1 AND ($2 = '' OR durum = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, blokID, durum, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eksiklikler: %w", err)
	}
	defer rows.Close()

	var eksiklikler []*entity.Eksiklik
	for rows.Next() {
		var e entity.Eksiklik
		if err := rows.Scan(&e.ID, &e.BlokID, &e.KatNo, &e.DaireNo, &e.Aciklama, &e.Durum, &e.FotoURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan eksiklik: %w", err)
		}
		eksiklikler = append(eksiklikler, &e)
	}
	return eksiklikler, rows.Err()
}

// Update eksikliği günceller.
func (r *EksiklikRepo) Update(eksiklik *entity.Eksiklik) error {
	query := `
		UPDATE eksiklikler SET aciklama = $2, durum = $3, foto_url = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		eksiklik.ID, eksiklik.Aciklama, eksiklik.Durum, eksiklik.FotoURL, eksiklik.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update eksiklik: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete eksikliği siler.
func (r *EksiklikRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM eksiklikler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete eksiklik: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
