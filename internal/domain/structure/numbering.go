// Package structure blok yapı editörünün saf kurallarını içerir:
// kat numarası belirteçleri, yeni kat/daire numaralandırma ve kanonik sıralama.
// Bellekteki küçük dilimler üzerinde çalışır, kalıcılık bilmez.
package structure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

// BodrumIndex "B3" biçimindeki bodrum belirtecini çözer; 3, true döner.
// Bodrum belirteci değilse false döner.
func BodrumIndex(no string) (int, bool) {
	if len(no) < 2 || (no[0] != 'B' && no[0] != 'b') {
		return 0, false
	}
	n, err := strconv.Atoi(no[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// SayisalNo zemin/normal/çatı katların sayısal belirtecini çözer ("0", "3", ...).
func SayisalNo(no string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(no))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// YeniKat verilen tip için numaralandırma kurallarına göre yeni bir kat üretir.
// Zemin ve çatı için blokta zaten varsa ErrDuplicateSingleton döner; mevcut
// katlara dokunulmaz.
//
// Kurallar:
//   - ZEMIN: her zaman "0".
//   - BODRUM: ekleme sırasına göre B1, B2, ... Silme sonrası boşluk doldurulmaz,
//     bir sonraki bodrum en büyük mevcut indeksin bir fazlasını alır.
//   - NORMAL: normal katlar arasında kullanılmayan en küçük pozitif tam sayı.
//     Çatının sayısal değeri bu kümeye dahil değildir (ayrı numara hattı).
//   - CATI: en büyük normal kat numarasının bir fazlası; sıralamada bu değer
//     kullanılmaz, çatı her zaman en üsttedir.
func YeniKat(katlar []entity.Kat, tip string) (entity.Kat, error) {
	switch tip {
	case entity.KatTipiZemin, entity.KatTipiCati:
		for _, k := range katlar {
			if k.Tip == tip {
				return entity.Kat{}, fmt.Errorf("%w: %s", domain.ErrDuplicateSingleton, tip)
			}
		}
	case entity.KatTipiBodrum, entity.KatTipiNormal:
		// tekillik kısıtı yok
	default:
		return entity.Kat{}, fmt.Errorf("%w: bilinmeyen kat tipi %q", domain.ErrInvalidInput, tip)
	}

	kat := entity.Kat{Tip: tip, Daireler: []entity.Daire{}}
	switch tip {
	case entity.KatTipiZemin:
		kat.No = "0"
	case entity.KatTipiBodrum:
		enBuyuk := 0
		for _, k := range katlar {
			if k.Tip != entity.KatTipiBodrum {
				continue
			}
			if n, ok := BodrumIndex(k.No); ok && n > enBuyuk {
				enBuyuk = n
			}
		}
		kat.No = fmt.Sprintf("B%d", enBuyuk+1)
	case entity.KatTipiNormal:
		kat.No = strconv.Itoa(enKucukBosNormalNo(katlar))
	case entity.KatTipiCati:
		enBuyuk := 0
		for _, k := range katlar {
			if k.Tip != entity.KatTipiNormal {
				continue
			}
			if n, ok := SayisalNo(k.No); ok && n > enBuyuk {
				enBuyuk = n
			}
		}
		kat.No = strconv.Itoa(enBuyuk + 1)
	}
	return kat, nil
}

// enKucukBosNormalNo yalnızca NORMAL katların kullandığı numaralara bakarak
// boşta olan en küçük pozitif tam sayıyı bulur. Silinen katların numaraları
// yeniden kullanılabilir (1,3 varken sıradaki 2'dir).
func enKucukBosNormalNo(katlar []entity.Kat) int {
	kullanilan := make(map[int]bool, len(katlar))
	for _, k := range katlar {
		if k.Tip != entity.KatTipiNormal {
			continue
		}
		if n, ok := SayisalNo(k.No); ok {
			kullanilan[n] = true
		}
	}
	for n := 1; ; n++ {
		if !kullanilan[n] {
			return n
		}
	}
}
