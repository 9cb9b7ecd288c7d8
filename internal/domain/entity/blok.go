package entity

import "time"

// Kat tipleri. Zemin ve çatı blok başına en fazla bir kez bulunabilir.
const (
	KatTipiBodrum = "BODRUM"
	KatTipiZemin  = "ZEMIN"
	KatTipiNormal = "NORMAL"
	KatTipiCati   = "CATI"
)

// Daire tipleri. Şimdilik tek tip; kat holü daire kaydının No alanıyla ayırt edilir.
const (
	DaireTipi = "DAIRE"
)

// Blok bir şantiyenin tek bir yapı kanadını/kulesini temsil eder.
// Katlar tam-doküman olarak saklanır ve kaydetme anında kanonik sıraya dizilir;
// sıralama bilgisi her zaman yeniden türetilebilir, saklanan sıra bağlayıcı değildir.
type Blok struct {
	ID        string
	SantiyeID string
	Ad        string
	Kod       string // daire numarası üretiminde önek (ör. "A")
	Katlar    []Kat
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kat bir blok içindeki yatay seviye.
// No bir kat numarası belirtecidir: zemin "0", normal katlar "1","2",...,
// bodrumlar "B1","B2",... Çatının sayısal değeri sıralamada kullanılmaz.
type Kat struct {
	No       string
	Tip      string // BODRUM | ZEMIN | NORMAL | CATI
	Ad       string // opsiyonel özel görünen ad
	Daireler []Daire
}

// Daire bir kattaki daire ya da "KAT HOLÜ n" ortak alan kaydı.
type Daire struct {
	No  string // serbest etiket; kat içinde tekil, kat holleri hariç
	Tip string
}
