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

var _ repository.PersonelRepository = (*PersonelRepo)(nil)

// PersonelRepo PersonelRepository portunun PostgreSQL uygulaması.
type PersonelRepo struct {
	q Querier
}

// NewPersonelRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewPersonelRepository(q Querier) *PersonelRepo {
	return &PersonelRepo{q: q}
}

// Create yeni personel kaydeder.
func (r *PersonelRepo) Create(personel *entity.Personel) error {
	query := `
		INSERT INTO personeller (id, santiye_id, ad, soyad, gorev, telefon, yevmiye, aktif, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		personel.ID, personel.SantiyeID, personel.Ad, personel.Soyad, personel.Gorev,
		personel.Telefon, personel.Yevmiye, personel.Aktif, personel.CreatedAt, personel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert personel: %w", err)
	}
	return nil
}

// GetByID personeli ID ile getirir.
func (r *PersonelRepo) GetByID(id string) (*entity.Personel, error) {
	query := `
		SELECT id, santiye_id, ad, soyad, gorev, telefon, yevmiye, aktif, created_at, updated_at
		FROM personeller WHERE id = $1`
	var p entity.Personel
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SantiyeID, &p.Ad, &p.Soyad, &p.Gorev, &p.Telefon, &p.Yevmiye, &p.Aktif, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get personel: %w", err)
	}
	return &p, nil
}

// ListBySantiye şantiye personelini ada göre sayfalı döner.
func (r *PersonelRepo) ListBySantiye(santiyeID string, limit, offset int) ([]*entity.Personel, error) {
	query := `
		SELECT id, santiye_id, ad, soyad, gorev, telefon, yevmiye, aktif, created_at, updated_at
		FROM personeller WHERE santiye_id = $1 ORDER BY ad, soyad LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, santiyeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list personeller: %w", err)
	}
	defer rows.Close()

	var personeller []*entity.Personel
	for rows.Next() {
		var p entity.Personel
		if err := rows.Scan(&p.ID, &p.SantiyeID, &p.Ad, &p.Soyad, &p.Gorev, &p.Telefon, &p.Yevmiye, &p.Aktif, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan personel: %w", err)
		}
		personeller = append(personeller, &p)
	}
	return personeller, rows.Err()
}

// Update personeli günceller.
func (r *PersonelRepo) Update(personel *entity.Personel) error {
	query := `
		UPDATE personeller
		SET ad = $2, soyad = $3, gorev = $4, telefon = $5, yevmiye = $6, aktif = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		personel.ID, personel.Ad, personel.Soyad, personel.Gorev, personel.Telefon,
		personel.Yevmiye, personel.Aktif, personel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update personel: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete personeli puantajıyla birlikte siler (ON DELETE CASCADE).
func (r *PersonelRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM personeller WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete personel: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
