package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiyepro/santiye-api/internal/domain"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/structure"
)

func kat(no, tip string) entity.Kat {
	return entity.Kat{No: no, Tip: tip}
}

// Boş blokta zemin eklenir: no "0" olmalı. İkinci zemin reddedilir.
func TestYeniKat_ZeminTekil(t *testing.T) {
	zemin, err := structure.YeniKat(nil, entity.KatTipiZemin)
	require.NoError(t, err)
	assert.Equal(t, "0", zemin.No)
	assert.Equal(t, entity.KatTipiZemin, zemin.Tip)

	_, err = structure.YeniKat([]entity.Kat{zemin}, entity.KatTipiZemin)
	assert.ErrorIs(t, err, domain.ErrDuplicateSingleton,
		"ikinci zemin kat DuplicateSingleton ile reddedilmeli")
}

// Çatı da tekildir.
func TestYeniKat_CatiTekil(t *testing.T) {
	katlar := []entity.Kat{kat("1", entity.KatTipiNormal), kat("2", entity.KatTipiNormal)}
	cati, err := structure.YeniKat(katlar, entity.KatTipiCati)
	require.NoError(t, err)
	assert.Equal(t, entity.KatTipiCati, cati.Tip)

	_, err = structure.YeniKat(append(katlar, cati), entity.KatTipiCati)
	assert.ErrorIs(t, err, domain.ErrDuplicateSingleton)
}

// Bodrumlar ekleme sırasına göre B1, B2, ... numarası alır.
func TestYeniKat_BodrumSirasi(t *testing.T) {
	var katlar []entity.Kat
	for i, beklenen := range []string{"B1", "B2", "B3"} {
		b, err := structure.YeniKat(katlar, entity.KatTipiBodrum)
		require.NoError(t, err, "bodrum %d", i+1)
		assert.Equal(t, beklenen, b.No)
		katlar = append(katlar, b)
	}
}

// Bodrum silindikten sonra numara yeniden kullanılmaz: B1 silinse de sıradaki B3'tür.
func TestYeniKat_BodrumBoslukDoldurulmaz(t *testing.T) {
	katlar := []entity.Kat{kat("B2", entity.KatTipiBodrum)}
	b, err := structure.YeniKat(katlar, entity.KatTipiBodrum)
	require.NoError(t, err)
	assert.Equal(t, "B3", b.No)
}

// Normal katlar kullanılmayan en küçük pozitif numarayı alır; silinen numara geri kullanılabilir.
func TestYeniKat_NormalEnKucukBosNo(t *testing.T) {
	katlar := []entity.Kat{
		kat("1", entity.KatTipiNormal),
		kat("3", entity.KatTipiNormal),
		kat("0", entity.KatTipiZemin),
	}
	k, err := structure.YeniKat(katlar, entity.KatTipiNormal)
	require.NoError(t, err)
	assert.Equal(t, "2", k.No, "1 ve 3 doluyken sıradaki normal kat 2 olmalı")
}

// Çatı varken normal katlar kendi aralarında numaralanmaya devam eder;
// çatının sayısal değeri normal hattı etkilemez.
func TestYeniKat_CatiAyriNumaraHatti(t *testing.T) {
	katlar := []entity.Kat{
		kat("1", entity.KatTipiNormal),
		kat("2", entity.KatTipiNormal),
	}
	cati, err := structure.YeniKat(katlar, entity.KatTipiCati)
	require.NoError(t, err)
	assert.Equal(t, "3", cati.No, "çatı en büyük normal no + 1 alır")
	katlar = append(katlar, cati)

	k, err := structure.YeniKat(katlar, entity.KatTipiNormal)
	require.NoError(t, err)
	assert.Equal(t, "3", k.No,
		"normal katlar çatıdan bağımsız numaralanır; 3 normaller arasında boştadır")
}

func TestYeniKat_BilinmeyenTip(t *testing.T) {
	_, err := structure.YeniKat(nil, "TERAS")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Hangi sırayla eklenirse eklensin blokta en fazla bir zemin ve bir çatı bulunur.
func TestYeniKat_TekillikInvaryanti(t *testing.T) {
	tipler := []string{
		entity.KatTipiNormal, entity.KatTipiZemin, entity.KatTipiCati,
		entity.KatTipiZemin, entity.KatTipiBodrum, entity.KatTipiCati,
		entity.KatTipiNormal, entity.KatTipiZemin,
	}
	var katlar []entity.Kat
	for _, tip := range tipler {
		k, err := structure.YeniKat(katlar, tip)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrDuplicateSingleton)
			continue
		}
		katlar = append(katlar, k)

		zemin, cati := 0, 0
		for _, mevcut := range katlar {
			switch mevcut.Tip {
			case entity.KatTipiZemin:
				zemin++
			case entity.KatTipiCati:
				cati++
			}
		}
		assert.LessOrEqual(t, zemin, 1)
		assert.LessOrEqual(t, cati, 1)
	}
}

func TestBodrumIndex(t *testing.T) {
	n, ok := structure.BodrumIndex("B2")
	require.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = structure.BodrumIndex("2")
	assert.False(t, ok)
	_, ok = structure.BodrumIndex("B0")
	assert.False(t, ok)
	_, ok = structure.BodrumIndex("Bx")
	assert.False(t, ok)
}
