package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/structure"
)

func nolar(katlar []entity.Kat) []string {
	out := make([]string, len(katlar))
	for i, k := range katlar {
		out[i] = k.No
	}
	return out
}

// Kanonik sıra: çatı, normal katlar azalan, zemin, bodrumlar B1 üstte.
func TestSiraliKatlar_KanonikSira(t *testing.T) {
	karisik := []entity.Kat{
		kat("B2", entity.KatTipiBodrum),
		kat("1", entity.KatTipiNormal),
		kat("4", entity.KatTipiCati), // sayısal değeri ne olursa olsun en üstte
		kat("0", entity.KatTipiZemin),
		kat("3", entity.KatTipiNormal),
		kat("B1", entity.KatTipiBodrum),
		kat("2", entity.KatTipiNormal),
	}
	sirali := structure.SiraliKatlar(karisik)
	assert.Equal(t, []string{"4", "3", "2", "1", "0", "B1", "B2"}, nolar(sirali))
}

// Sıralama idempotenttir: sortedFloors(sortedFloors(x)) == sortedFloors(x).
func TestSiraliKatlar_Idempotent(t *testing.T) {
	karisik := []entity.Kat{
		kat("0", entity.KatTipiZemin),
		kat("B1", entity.KatTipiBodrum),
		kat("2", entity.KatTipiNormal),
		kat("3", entity.KatTipiCati),
	}
	bir := structure.SiraliKatlar(karisik)
	iki := structure.SiraliKatlar(bir)
	assert.Equal(t, bir, iki)
}

// Girdi dilimi değişmeden kalır; sıralama yeni dilim döner.
func TestSiraliKatlar_GirdiyiDegistirmez(t *testing.T) {
	girdi := []entity.Kat{
		kat("1", entity.KatTipiNormal),
		kat("3", entity.KatTipiNormal),
	}
	_ = structure.SiraliKatlar(girdi)
	require.Equal(t, []string{"1", "3"}, nolar(girdi))
}

// Normal 1,2 varken çatı eklenir; sıra [çatı, 2, 1] olur.
func TestSiraliKatlar_CatiNormallerinUstunde(t *testing.T) {
	katlar := []entity.Kat{
		kat("1", entity.KatTipiNormal),
		kat("2", entity.KatTipiNormal),
	}
	cati, err := structure.YeniKat(katlar, entity.KatTipiCati)
	require.NoError(t, err)
	katlar = append(katlar, cati)

	sirali := structure.SiraliKatlar(katlar)
	require.Len(t, sirali, 3)
	assert.Equal(t, entity.KatTipiCati, sirali[0].Tip)
	assert.Equal(t, "2", sirali[1].No)
	assert.Equal(t, "1", sirali[2].No)
}
