// Package pdf implementa la generación de la ficha de producción imprimible
// que acompaña la orden en el taller.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Referencia + Estado  │  N° Orden + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CORTE: Color | Tela | Rollos | P | M | G | GG | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAQUETES: Costurera | Estado | Piezas | Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: saldo pendiente + notas                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/kavins/produccion-api/internal/application/report"
	"github.com/kavins/produccion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.OrderSheetGenerator = (*MarotoOrderSheetGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoOrderSheetGenerator implementa report.OrderSheetGenerator usando Maroto v2.
type MarotoOrderSheetGenerator struct{}

// NewMarotoOrderSheetGenerator construye el generador.
func NewMarotoOrderSheetGenerator() *MarotoOrderSheetGenerator { return &MarotoOrderSheetGenerator{} }

// GenerateOrderSheet genera el PDF de la ficha y devuelve sus bytes.
func (g *MarotoOrderSheetGenerator) GenerateOrderSheet(_ context.Context, order *entity.ProductionOrder) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Producción "+order.ReferenceCode, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de corte: una fila por línea de color
	m.AddRows(sectionTitle("PLAN DE CORTE"))
	m.AddRows(cutTableHeaderRow())
	for _, r := range cutTableRows(order.Items) {
		m.AddRows(r)
	}
	m.AddRows(cutTotalsRow(order.Items))

	// Paquetes distribuidos
	if len(order.Splits) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("PAQUETES DISTRIBUIDOS"))
		m.AddRows(splitsHeaderRow())
		for _, r := range splitRows(order.Splits) {
			m.AddRows(r)
		}
	}

	// Footer: saldo + notas
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(order) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: referencia + estado (izq) y N° de orden + fecha (der).
func headerRow(order *entity.ProductionOrder) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Referencia "+order.ReferenceCode, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+statusLabel(order.Status), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Orden "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// cutTableHeaderRow: cabecera de la grilla de corte.
func cutTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Color", 2, align.Left),
		h("Tela", 3, align.Left),
		h("Rollos", 1, align.Right),
		h("P", 1, align.Center),
		h("M", 1, align.Center),
		h("G", 1, align.Center),
		h("GG", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// cutTableRows: una fila por línea de color del plan de corte.
func cutTableRows(items []entity.OrderItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(it.Color, 2, align.Left),
			cell(it.FabricName, 3, align.Left),
			cell(it.RollsUsed.StringFixed(1), 1, align.Right),
			cell(sizeCount(it, entity.SizeP), 1, align.Center),
			cell(sizeCount(it, entity.SizeM), 1, align.Center),
			cell(sizeCount(it, entity.SizeG), 1, align.Center),
			cell(sizeCount(it, entity.SizeGG), 1, align.Center),
			cell(strconv.Itoa(it.ActualPieces), 2, align.Right),
		))
	}
	return result
}

// cutTotalsRow: total de piezas del plan.
func cutTotalsRow(items []entity.OrderItem) core.Row {
	total := 0
	for _, it := range items {
		total += it.ActualPieces
	}
	return row.New(8).Add(
		col.New(10).Add(text.New("TOTAL PIEZAS:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(strconv.Itoa(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// splitsHeaderRow: cabecera de la tabla de paquetes.
func splitsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Costurera", 5, align.Left),
		h("Estado", 2, align.Center),
		h("Piezas", 2, align.Right),
		h("Entregado", 3, align.Right),
	)
}

// splitRows: una fila por paquete entregado a costura.
func splitRows(splits []entity.OrderSplit) []core.Row {
	result := make([]core.Row, 0, len(splits))
	for _, sp := range splits {
		pieces := 0
		for _, it := range sp.Items {
			pieces += it.ActualPieces
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(sp.SeamstressName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(statusLabel(sp.Status), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(strconv.Itoa(pieces), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(sp.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRows: saldo pendiente de distribuir + notas de la orden.
func footerRows(order *entity.ProductionOrder) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Piezas pendientes de distribuir: %d", order.RemainingPieces()), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
			}),
		)),
	}
	if order.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// statusLabel traduce el estado de alambre a la etiqueta del taller.
func statusLabel(status entity.OrderStatus) string {
	switch status {
	case entity.StatusPlanned:
		return "Planeada"
	case entity.StatusCutting:
		return "En corte"
	case entity.StatusSewing:
		return "En costura"
	case entity.StatusFinished:
		return "Terminada"
	default:
		return string(status)
	}
}

func sizeCount(item entity.OrderItem, size entity.Size) string {
	return strconv.Itoa(item.Sizes.Get(size))
}
