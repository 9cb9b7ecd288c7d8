package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/santiyepro/santiye-api/internal/application/ledger"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner callback'leri tek bir PostgreSQL transaction'ı içinde çalıştırır.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner runner'ı havuzla kurar.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run bir transaction başlatır, fn'i tx'e bağlı repo'larla çalıştırır ve
// sonuca göre Commit ya da Rollback yapar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	malzemeRepo repository.MalzemeRepository,
	hareketRepo repository.HareketRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	malzemeRepo := NewMalzemeRepository(tx)
	hareketRepo := NewHareketRepository(tx)

	if err := fn(malzemeRepo, hareketRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
