package structure

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

// KatHoluPrefix ortak alan dairelerinin etiket öneki. "KAT HOLÜ 1", "KAT HOLÜ 2"...
const KatHoluPrefix = "KAT HOLÜ"

// Türkçe büyük harf dönüşümü: "kat holü" -> "KAT HOLÜ", ı/i ayrımı doğru işlenir.
var turkceBuyuk = cases.Upper(language.Turkish)

// KatHoluMu etiketin kat holü olup olmadığını büyük/küçük harf duyarsız söyler.
// Kat holleri kat içi tekillik kuralından muaftır; her hol kendi sıra numarasını taşır.
func KatHoluMu(no string) bool {
	return strings.HasPrefix(turkceBuyuk.String(strings.TrimSpace(no)), KatHoluPrefix)
}

// YeniDaireNo kata eklenecek daire için etiket üretir.
// Boş kata eklenen ilk kayıt ortak alandır: "KAT HOLÜ 1". Sonrakiler
// <blokKod><katNo><2 haneli sıra> kalıbıyla numaralanır (A blok, 3. kat,
// ikinci daire -> "A302"); kata ait mevcut etiketlerle çakışan değerler atlanır.
func YeniDaireNo(kat entity.Kat, blokKod string) string {
	if len(kat.Daireler) == 0 {
		return KatHoluPrefix + " 1"
	}
	mevcut := make(map[string]bool, len(kat.Daireler))
	for _, d := range kat.Daireler {
		mevcut[d.No] = true
	}
	for sira := 1; ; sira++ {
		aday := fmt.Sprintf("%s%s%02d", blokKod, kat.No, sira)
		if !mevcut[aday] {
			return aday
		}
	}
}

// DaireNoCakisiyorMu yeni etiketin kattaki diğer dairelerle çakışıp çakışmadığını
// denetler. Kat holü etiketleri her zaman kabul edilir. haric: yeniden adlandırmada
// dairenin kendi indeksi; yeni ekleme için -1 verilir.
func DaireNoCakisiyorMu(kat entity.Kat, no string, haric int) bool {
	if KatHoluMu(no) {
		return false
	}
	for i, d := range kat.Daireler {
		if i == haric {
			continue
		}
		if d.No == no {
			return true
		}
	}
	return false
}
