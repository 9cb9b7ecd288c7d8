package structure

import (
	"math"
	"sort"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

// SiraliKatlar katların kanonik görünüm sırasını üretir (yukarıdan aşağıya):
// çatı, normal katlar sayısal no'ya göre azalan, zemin, bodrumlar B1 üstte
// olacak şekilde. Saf ve idempotenttir; saklanan sıra ne olursa olsun görüntü
// ve kaydetme anında yeniden uygulanır. Girdi dilimi değiştirilmez.
func SiraliKatlar(katlar []entity.Kat) []entity.Kat {
	sirali := make([]entity.Kat, len(katlar))
	copy(sirali, katlar)
	sort.SliceStable(sirali, func(i, j int) bool {
		return siraAnahtari(sirali[i]) > siraAnahtari(sirali[j])
	})
	return sirali
}

// siraAnahtari kat için azalan sıralamada kullanılacak anahtarı döner.
// Çatının kendi sayısal değeri kasıtlı olarak yok sayılır.
func siraAnahtari(k entity.Kat) int {
	switch k.Tip {
	case entity.KatTipiCati:
		return math.MaxInt32
	case entity.KatTipiZemin:
		return 0
	case entity.KatTipiBodrum:
		if n, ok := BodrumIndex(k.No); ok {
			return -n // B1 = -1 üstte, B2 = -2 altta
		}
		return math.MinInt32
	default: // NORMAL
		if n, ok := SayisalNo(k.No); ok {
			return n
		}
		return 1
	}
}
