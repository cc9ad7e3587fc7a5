// Package pdf renders the customer-facing sale invoice.
//
// A5 page layout:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Cafe name   │  Invoice # + Date  │
//	│  ───────────────────────────────────────  │
//	│  TABLE: Qty | Item | Unit price | Line    │
//	│  ───────────────────────────────────────  │
//	│  TOTAL                                    │
//	│  FOOTER: customer phone + thank-you note  │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/sarvcafe/cafepos-api/internal/application/sales"
)

var (
	colorPrimary = &props.Color{Red: 74, Green: 44, Blue: 42}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.InvoiceGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implements sales.InvoiceGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(_ context.Context, data sales.InvoiceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+data.InvoiceID, true).
		WithAuthor(data.CafeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(footerRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: cafe name (left), invoice number and date (right).
func headerRow(data sales.InvoiceData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.CafeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(data.InvoiceID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 2, align.Center),
		h("Item", 5, align.Left),
		h("Unit", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableLineRows(lines []sales.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		lineTotal := l.Price.Mul(decimal.NewFromInt(l.Qty))
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(l.Price.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(lineTotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(data sales.InvoiceData) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(data.Total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func footerRows(data sales.InvoiceData) []core.Row {
	rows := []core.Row{row.New(3)}
	if data.Phone != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Customer: "+data.Phone, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Thank you for your visit.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	)))
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatMoney inserts thousands separators into a numeric string without
// decimals. E.g. "25000" -> "25,000", "1000000" -> "1,000,000".
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		lead := n % 3
		if lead > 0 {
			buf = append(buf, s[:lead]...)
		}
		for i := lead; i < n; i += 3 {
			if len(buf) > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, s[i:i+3]...)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
