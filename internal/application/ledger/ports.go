package ledger

import (
	"context"

	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// TxRunner bir fonksiyonu DB transaction'ı içinde, o transaction'a bağlı
// repolarla çalıştırır. Hareket kaydı ile malzeme miktarı güncellemesinin
// tek atomik birim olmasını garanti eder; kaynak uygulamadaki iki bağımsız
// yazma arasındaki tutarsızlık penceresi burada yoktur.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		malzemeRepo repository.MalzemeRepository,
		hareketRepo repository.HareketRepository,
	) error) error
}
