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

var _ repository.HareketRepository = (*HareketRepo)(nil)

// HareketRepo HareketRepository portunun PostgreSQL uygulaması.
type HareketRepo struct {
	q Querier
}

// NewHareketRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewHareketRepository(q Querier) *HareketRepo {
	return &HareketRepo{q: q}
}

// Create yeni hareket kaydeder.
func (r *HareketRepo) Create(hareket *entity.Hareket) error {
	query := `
		INSERT INTO hareketler (id, malzeme_id, tip, miktar, not_, tarih, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		hareket.ID, hareket.MalzemeID, hareket.Tip, hareket.Miktar,
		hareket.Not, hareket.Tarih, hareket.CreatedAt, hareket.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert hareket: %w", err)
	}
	return nil
}

// GetByID hareketi ID ile getirir.
func (r *HareketRepo) GetByID(id string) (*entity.Hareket, error) {
	query := `
		SELECT id, malzeme_id, tip, miktar, not_, tarih, created_at, created_by
		FROM hareketler WHERE id = $1`
	var h entity.Hareket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.MalzemeID, &h.Tip, &h.Miktar, &h.Not, &h.Tarih, &h.CreatedAt, &h.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hareket: %w", err)
	}
	return &h, nil
}

// ListByMalzeme hareket geçmişini en yeniden eskiye sayfalı döner.
func (r *HareketRepo) ListByMalzeme(malzemeID string, limit, offset int) ([]*entity.Hareket, error) {
	query := `
		SELECT id, malzeme_id, tip, miktar, not_, tarih, created_at, created_by
		FROM hareketler WHERE malzeme_id = $1
		ORDER BY tarih DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, malzemeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list hareketler: %w", err)
	}
	defer rows.Close()

	var hareketler []*entity.Hareket
	for rows.Next() {
		var h entity.Hareket
		if err := rows.Scan(&h.ID, &h.MalzemeID, &h.Tip, &h.Miktar, &h.Not, &h.Tarih, &h.CreatedAt, &h.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan hareket: %w", err)
		}
		hareketler = append(hareketler, &h)
	}
	return hareketler, rows.Err()
}

// Update hareketi günceller (tip, miktar, not, tarih).
func (r *HareketRepo) Update(hareket *entity.Hareket) error {
	query := `
		UPDATE hareketler SET tip = $2, miktar = $3, not_ = $4, tarih = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		hareket.ID, hareket.Tip, hareket.Miktar, hareket.Not, hareket.Tarih,
	)
	if err != nil {
		return fmt.Errorf("update hareket: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hareketi siler.
func (r *HareketRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM hareketler WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hareket: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumDelta malzemenin tüm hareketlerinin işaretli toplamını döner (IN: +, OUT: -).
func (r *HareketRepo) SumDelta(malzemeID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN tip = 'IN' THEN miktar ELSE -miktar END), 0)
		FROM hareketler WHERE malzeme_id = $1`
	var toplam decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, malzemeID).Scan(&toplam); err != nil {
		return decimal.Zero, fmt.Errorf("sum delta: %w", err)
	}
	return toplam, nil
}
