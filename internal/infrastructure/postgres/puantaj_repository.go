package postgres

import (
	"context"
	"fmt"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ repository.PuantajRepository = (*PuantajRepo)(nil)

// PuantajRepo PuantajRepository portunun PostgreSQL uygulaması.
// Tekillik personel_id + tarih üzerindedir; Upsert ON CONFLICT ile çalışır.
type PuantajRepo struct {
	q Querier
}

// NewPuantajRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewPuantajRepository(q Querier) *PuantajRepo {
	return &PuantajRepo{q: q}
}

// Upsert günün kaydını yazar; aynı güne ikinci kayıt durumu, mesaiyi ve notu günceller.
func (r *PuantajRepo) Upsert(puantaj *entity.Puantaj) error {
	query := `
		INSERT INTO puantajlar (id, personel_id, tarih, durum, mesai, not_, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (personel_id, tarih)
		DO UPDATE SET durum = EXCLUDED.durum, mesai = EXCLUDED.mesai, not_ = EXCLUDED.not_`
	_, err := r.q.Exec(context.Background(), query,
		puantaj.ID, puantaj.PersonelID, puantaj.Tarih, puantaj.Durum,
		puantaj.Mesai, puantaj.Not, puantaj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert puantaj: %w", err)
	}
	return nil
}

// ListByPersonelAy personelin bir aydaki kayıtlarını tarih sırasıyla döner.
func (r *PuantajRepo) ListByPersonelAy(personelID string, yil, ay int) ([]*entity.Puantaj, error) {
	query := `
		SELECT id, personel_id, tarih, durum, mesai, not_, created_at
		FROM puantajlar
		WHERE personel_id = $1
		  AND EXTRACT(YEAR FROM tarih) = $2
		  AND EXTRACT(MONTH FROM tarih) = $3
		ORDER BY tarih`
	rows, err := r.q.Query(context.Background(), query, personelID, yil, ay)
	if err != nil {
		return nil, fmt.Errorf("list puantaj: %w", err)
	}
	defer rows.Close()

	var kayitlar []*entity.Puantaj
	for rows.Next() {
		var p entity.Puantaj
		if err := rows.Scan(&p.ID, &p.PersonelID, &p.Tarih, &p.Durum, &p.Mesai, &p.Not, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan puantaj: %w", err)
		}
		kayitlar = append(kayitlar, &p)
	}
	return kayitlar, rows.Err()
}

// Delete puantaj kaydını siler.
func (r *PuantajRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM puantajlar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete puantaj: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
