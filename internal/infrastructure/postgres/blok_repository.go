package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ repository.BlokRepository = (*BlokRepo)(nil)

// BlokRepo BlokRepository portunun PostgreSQL uygulaması.
// Kat/daire yapısı yapi sütununda JSONB doküman olarak saklanır; Save tam
// dokümanı üzerine yazar (son yazan kazanır).
type BlokRepo struct {
	q Querier
}

// NewBlokRepository kalıcılık adaptörünü kurar; pool ya da tx (Querier) verilebilir.
func NewBlokRepository(q Querier) *BlokRepo {
	return &BlokRepo{q: q}
}

// yapiDoc JSONB'deki kat/daire dokümanının kablo biçimi.
type yapiDoc struct {
	Katlar []katDoc `json:"katlar"`
}

type katDoc struct {
	No       string     `json:"no"`
	Tip      string     `json:"tip"`
	Ad       string     `json:"ad,omitempty"`
	Daireler []daireDoc `json:"daireler"`
}

type daireDoc struct {
	No  string `json:"no"`
	Tip string `json:"tip"`
}

func encodeYapi(katlar []entity.Kat) ([]byte, error) {
	doc := yapiDoc{Katlar: make([]katDoc, 0, len(katlar))}
	for _, k := range katlar {
		kd := katDoc{No: k.No, Tip: k.Tip, Ad: k.Ad, Daireler: make([]daireDoc, 0, len(k.Daireler))}
		for _, d := range k.Daireler {
			kd.Daireler = append(kd.Daireler, daireDoc{No: d.No, Tip: d.Tip})
		}
		doc.Katlar = append(doc.Katlar, kd)
	}
	return json.Marshal(doc)
}

func decodeYapi(raw []byte) ([]entity.Kat, error) {
	var doc yapiDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode yapi: %w", err)
	}
	katlar := make([]entity.Kat, 0, len(doc.Katlar))
	for _, kd := range doc.Katlar {
		k := entity.Kat{No: kd.No, Tip: kd.Tip, Ad: kd.Ad, Daireler: make([]entity.Daire, 0, len(kd.Daireler))}
		for _, dd := range kd.Daireler {
			k.Daireler = append(k.Daireler, entity.Daire{No: dd.No, Tip: dd.Tip})
		}
		katlar = append(katlar, k)
	}
	return katlar, nil
}

// Create yeni blok kaydeder.
func (r *BlokRepo) Create(blok *entity.Blok) error {
	raw, err := encodeYapi(blok.Katlar)
	if err != nil {
		return fmt.Errorf("encode yapi: %w", err)
	}
	query := `
		INSERT INTO bloklar (id, santiye_id, ad, kod, yapi, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		blok.ID, blok.SantiyeID, blok.Ad, blok.Kod, raw, blok.CreatedAt, blok.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert blok: %w", err)
	}
	return nil
}

// GetByID bloğu JSONB yapısıyla birlikte getirir.
func (r *BlokRepo) GetByID(id string) (*entity.Blok, error) {
	query := `
		SELECT id, santiye_id, ad, kod, yapi, created_at, updated_at
		FROM bloklar WHERE id = $1`
	var b entity.Blok
	var raw []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.SantiyeID, &b.Ad, &b.Kod, &raw, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blok: %w", err)
	}
	if b.Katlar, err = decodeYapi(raw); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBySantiye şantiyenin bloklarını kod sırasıyla döner.
func (r *BlokRepo) ListBySantiye(santiyeID string) ([]*entity.Blok, error) {
	query := `
		SELECT id, santiye_id, ad, kod, yapi, created_at, updated_at
		FROM bloklar WHERE santiye_id = $1 ORDER BY kod`
	rows, err := r.q.Query(context.Background(), query, santiyeID)
	if err != nil {
		return nil, fmt.Errorf("list bloklar: %w", err)
	}
	defer rows.Close()

	var bloklar []*entity.Blok
	for rows.Next() {
		var b entity.Blok
		var raw []byte
		if err := rows.Scan(&b.ID, &b.SantiyeID, &b.Ad, &b.Kod, &raw, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blok: %w", err)
		}
		if b.Katlar, err = decodeYapi(raw); err != nil {
			return nil, err
		}
		bloklar = append(bloklar, &b)
	}
	return bloklar, rows.Err()
}

// Save bloğu tam doküman olarak üzerine yazar: üst veri + kat/daire yapısı.
func (r *BlokRepo) Save(blok *entity.Blok) error {
	raw, err := encodeYapi(blok.Katlar)
	if err != nil {
		return fmt.Errorf("encode yapi: %w", err)
	}
	query := `
		UPDATE bloklar SET ad = $2, kod = $3, yapi = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		blok.ID, blok.Ad, blok.Kod, raw, blok.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save blok: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete bloğu siler.
func (r *BlokRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM bloklar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blok: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
