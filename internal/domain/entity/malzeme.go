package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Malzeme kategorileri.
const (
	KategoriInsaat   = "INSAAT" // kaba inşaat: demir, çimento, kalıp
	KategoriElektrik = "ELEKTRIK"
	KategoriMekanik  = "MEKANIK"
	KategoriBoya     = "BOYA"
	KategoriHirdavat = "HIRDAVAT"
	KategoriDiger    = "DIGER"
)

// Malzeme bir depodaki stoklu kalemi temsil eder.
// Miktar önbelleklenmiş güncel stoktur ve her zaman
// AcilisMiktar + hareketlerin işaretli toplamına eşit olmalıdır;
// bu eşitliği stok defteri (ledger) korur. Okuma yolu Miktar'ı doğrudan döner,
// geçmişten yeniden hesaplama yalnızca bakım/onarım işlemidir.
type Malzeme struct {
	ID           string
	DepoID       string
	Ad           string
	Kategori     string
	Birim        string          // adet, kg, m3, torba...
	Miktar       decimal.Decimal // güncel stok (önbellek, yetkili değer)
	AcilisMiktar decimal.Decimal // ilk kayıttaki açılış stoğu
	KritikStok   decimal.Decimal // bu seviyenin altı düşük-stok uyarısı üretir
	ImageURL     string
	Aciklama     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// KritikSeviyede malzemenin düşük-stok eşiğinde ya da altında olup olmadığını söyler.
func (m *Malzeme) KritikSeviyede() bool {
	return m.Miktar.LessThanOrEqual(m.KritikStok)
}
