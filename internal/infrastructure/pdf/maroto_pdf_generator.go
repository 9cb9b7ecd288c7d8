// Package pdf hakediş raporunun yazdırılabilir çıktısını üretir.
//
// A4 sayfa düzeni:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BAŞLIK: Şantiye adı + işveren  │  Hakediş No + Dönem       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLO: Açıklama | Birim | Miktar | Birim Fiyat | Tutar     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GENEL TOPLAM                                               │
//	│  İmza alanları: Yüklenici / Kontrol / İşveren               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apphakedis "github.com/santiyepro/santiye-api/internal/application/hakedis"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 178, Green: 58, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apphakedis.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator hakedis.PDFGenerator portunun Maroto v2 uygulaması.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator üreticiyi kurar.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// HakedisPDF hakediş raporunu üretir ve PDF baytlarını döner.
func (g *MarotoPDFGenerator) HakedisPDF(santiye *entity.Santiye, hakedis *entity.Hakedis) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Hakediş No %d - %s", hakedis.No, santiye.Ad), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(baslikRow(santiye, hakedis))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tabloBaslikRow())
	for _, r := range kalemRows(hakedis.Kalemler) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(toplamRow(hakedis))

	m.AddRows(line.NewRow(6))
	m.AddRows(imzaRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: hakediş üretilemedi: %w", err)
	}
	return doc.GetBytes(), nil
}

// baslikRow: şantiye + işveren (sol), hakediş no + dönem (sağ).
func baslikRow(santiye *entity.Santiye, hakedis *entity.Hakedis) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(santiye.Ad, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("İşveren: "+bosDegilse(santiye.Isveren, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HAKEDİŞ RAPORU", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Hakediş No: %d", hakedis.No), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Dönem: "+hakedis.Donem, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tabloBaslikRow: kalem tablosunun başlığı.
func tabloBaslikRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("İş Kalemi", 5, align.Left),
		h("Birim", 1, align.Center),
		h("Miktar", 2, align.Right),
		h("Birim Fiyat", 2, align.Right),
		h("Tutar", 2, align.Right),
	)
}

// kalemRows: her iş kalemi için bir satır.
func kalemRows(kalemler []entity.HakedisKalemi) []core.Row {
	result := make([]core.Row, 0, len(kalemler))
	for _, k := range kalemler {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				k.Aciklama,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				k.Birim,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				k.Miktar.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				paraFormat(k.BirimFiyat.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				paraFormat(k.Tutar().StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// toplamRow: sağa dayalı genel toplam.
func toplamRow(hakedis *entity.Hakedis) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(text.New("GENEL TOPLAM:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(paraFormat(hakedis.Toplam().StringFixed(2))+" TL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// imzaRow: yüklenici / kontrol / işveren imza alanları.
func imzaRow() core.Row {
	imza := func(label string) core.Col {
		return col.New(4).Add(
			text.New("____________________", props.Text{Size: 9, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 8}),
		)
	}
	return row.New(16).Add(
		imza("YÜKLENİCİ"),
		imza("KONTROL"),
		imza("İŞVEREN"),
	)
}

func bosDegilse(s, yoksa string) string {
	if s != "" {
		return s
	}
	return yoksa
}

// paraFormat "1234567.89" biçimindeki tutarı "1.234.567,89" olarak yazar.
func paraFormat(s string) string {
	tam, kusur := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		tam, kusur = s[:i], s[i+1:]
	}
	neg := strings.HasPrefix(tam, "-")
	tam = strings.TrimPrefix(tam, "-")

	var b strings.Builder
	for i, r := range tam {
		if i > 0 && (len(tam)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if kusur != "" {
		out += "," + kusur
	}
	if neg {
		out = "-" + out
	}
	return out
}
