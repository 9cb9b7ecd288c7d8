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

var _ repository.SantiyeRepository = (*SantiyeRepo)(nil)

// SantiyeRepo SantiyeRepository portunun PostgreSQL uygulaması.
type SantiyeRepo struct {
	q Querier
}

// NewSantiyeRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewSantiyeRepository(q Querier) *SantiyeRepo {
	return &SantiyeRepo{q: q}
}

// Create yeni şantiye kaydeder.
func (r *SantiyeRepo) Create(santiye *entity.Santiye) error {
	query := `
		INSERT INTO santiyeler (id, ad, adres, isveren, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		santiye.ID, santiye.Ad, santiye.Adres, santiye.Isveren, santiye.CreatedAt, santiye.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert santiye: %w", err)
	}
	return nil
}

// GetByID şantiyeyi ID ile getirir.
func (r *SantiyeRepo) GetByID(id string) (*entity.Santiye, error) {
	query := `
		SELECT id, ad, adres, isveren, created_at, updated_at
		FROM santiyeler WHERE id = $1`
	var s entity.Santiye
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Ad, &s.Adres, &s.Isveren, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get santiye: %w", err)
	}
	return &s, nil
}

// List şantiyeleri oluşturulma sırasına göre sayfalı döner.
func (r *SantiyeRepo) List(limit, offset int) ([]*entity.Santiye, error) {
	query := `
		SELECT id, ad, adres, isveren, created_at, updated_at
		FROM santiyeler ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list santiyeler: %w", err)
	}
	defer rows.Close()

	var santiyeler []*entity.Santiye
	for rows.Next() {
		var s entity.Santiye
		if err := rows.Scan(&s.ID, &s.Ad, &s.Adres, &s.Isveren, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan santiye: %w", err)
		}
		santiyeler = append(santiyeler, &s)
	}
	return santiyeler, rows.Err()
}

// Update şantiyeyi günceller.
func (r *SantiyeRepo) Update(santiye *entity.Santiye) error {
	query := `
		UPDATE santiyeler SET ad = $2, adres = $3, isveren = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		santiye.ID, santiye.Ad, santiye.Adres, santiye.Isveren, santiye.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update santiye: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete şantiyeyi siler; bağlı kayıtlar şemadaki ON DELETE CASCADE ile düşer.
func (r *SantiyeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM santiyeler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete santiye: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
