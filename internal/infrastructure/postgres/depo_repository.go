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

var _ repository.DepoRepository = (*DepoRepo)(nil)

// DepoRepo DepoRepository portunun PostgreSQL uygulaması.
type DepoRepo struct {
	q Querier
}

// NewDepoRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewDepoRepository(q Querier) *DepoRepo {
	return &DepoRepo{q: q}
}

// Create yeni depo kaydeder.
func (r *DepoRepo) Create(depo *entity.Depo) error {
	query := `
		INSERT INTO depolar (id, santiye_id, ad, sorumlu, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		depo.ID, depo.SantiyeID, depo.Ad, depo.Sorumlu, depo.CreatedAt, depo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert depo: %w", err)
	}
	return nil
}

// GetByID depoyu ID ile getirir.
func (r *DepoRepo) GetByID(id string) (*entity.Depo, error) {
	query := `
		SELECT id, santiye_id, ad, sorumlu, created_at, updated_at
		FROM depolar WHERE id = $1`
	var d entity.Depo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.SantiyeID, &d.Ad, &d.Sorumlu, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get depo: %w", err)
	}
	return &d, nil
}

// ListBySantiye şantiyenin depolarını ada göre döner.
func (r *DepoRepo) ListBySantiye(santiyeID string) ([]*entity.Depo, error) {
	query := `
		SELECT id, santiye_id, ad, sorumlu, created_at, updated_at
		FROM depolar WHERE santiye_id = $1 ORDER BY ad`
	rows, err := r.q.Query(context.Background(), query, santiyeID)
	if err != nil {
		return nil, fmt.Errorf("list depolar: %w", err)
	}
	defer rows.Close()

	var depolar []*entity.Depo
	for rows.Next() {
		var d entity.Depo
		if err := rows.Scan(&d.ID, &d.SantiyeID, &d.Ad, &d.Sorumlu, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan depo: %w", err)
		}
		depolar = append(depolar, &d)
	}
	return depolar, rows.Err()
}

// Update depoyu günceller.
func (r *DepoRepo) Update(depo *entity.Depo) error {
	query := `
		UPDATE depolar SET ad = $2, sorumlu = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		depo.ID, depo.Ad, depo.Sorumlu, depo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update depo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete depoyu siler.
func (r *DepoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM depolar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete depo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
