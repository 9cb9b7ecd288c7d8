package structure_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/structure"
)

func katIleDaireler(no string, daireNolar ...string) entity.Kat {
	k := entity.Kat{No: no, Tip: entity.KatTipiNormal}
	for _, d := range daireNolar {
		k.Daireler = append(k.Daireler, entity.Daire{No: d, Tip: entity.DaireTipi})
	}
	return k
}

// Boş kata eklenen ilk kayıt ortak alandır.
func TestYeniDaireNo_BosKattaKatHolu(t *testing.T) {
	no := structure.YeniDaireNo(katIleDaireler("3"), "A")
	assert.Equal(t, "KAT HOLÜ 1", no)
}

// A blok, 3. kat, mevcut A301 -> sıradaki A302.
func TestYeniDaireNo_ArdisikNumara(t *testing.T) {
	no := structure.YeniDaireNo(katIleDaireler("3", "A301"), "A")
	assert.Equal(t, "A302", no)
}

// Araya elle verilmiş bir numara varsa atlanır: A301 ve A302 doluyken A303 üretilir.
func TestYeniDaireNo_CakismaAtlanir(t *testing.T) {
	no := structure.YeniDaireNo(katIleDaireler("3", "KAT HOLÜ 1", "A301", "A302"), "A")
	assert.Equal(t, "A303", no)
}

// Bodrum katta önek kat belirtecini aynen kullanır (AB101 gibi).
func TestYeniDaireNo_BodrumKat(t *testing.T) {
	k := katIleDaireler("B1", "KAT HOLÜ 1")
	k.Tip = entity.KatTipiBodrum
	assert.Equal(t, "AB101", structure.YeniDaireNo(k, "A"))
}

// Üretilen etiket hiçbir zaman kat holü olmayan mevcut bir etiketle çakışmaz.
func TestYeniDaireNo_CakismaInvaryanti(t *testing.T) {
	k := katIleDaireler("2")
	for i := 0; i < 30; i++ {
		no := structure.YeniDaireNo(k, "C")
		for _, d := range k.Daireler {
			if !structure.KatHoluMu(d.No) {
				assert.NotEqual(t, d.No, no, "adım %d", i)
			}
		}
		k.Daireler = append(k.Daireler, entity.Daire{No: no, Tip: entity.DaireTipi})
	}
}

func TestKatHoluMu(t *testing.T) {
	durumlar := []struct {
		no       string
		beklenen bool
	}{
		{"KAT HOLÜ 1", true},
		{"kat holü 2", true}, // küçük harf de tanınır
		{"Kat Holü 1", true},
		{"  KAT HOLÜ 3", true}, // baştaki boşluk önemsiz
		{"A301", false},
		{"HOL 1", false},
		{"", false},
	}
	for _, d := range durumlar {
		t.Run(fmt.Sprintf("%q", d.no), func(t *testing.T) {
			assert.Equal(t, d.beklenen, structure.KatHoluMu(d.no))
		})
	}
}

// Kat holü etiketleri tekillik denetiminden muaftır; diğerleri birebir karşılaştırılır.
func TestDaireNoCakisiyorMu(t *testing.T) {
	k := katIleDaireler("1", "KAT HOLÜ 1", "A101", "A102")

	assert.True(t, structure.DaireNoCakisiyorMu(k, "A101", -1))
	assert.False(t, structure.DaireNoCakisiyorMu(k, "A103", -1))
	// Mevcut KAT HOLÜ 1'e rağmen "kat holü 1" kabul edilir.
	assert.False(t, structure.DaireNoCakisiyorMu(k, "kat holü 1", -1))
	// Yeniden adlandırmada dairenin kendisi hariç tutulur.
	assert.False(t, structure.DaireNoCakisiyorMu(k, "A101", 1))
}
