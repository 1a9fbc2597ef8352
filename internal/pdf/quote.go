// Package pdf renders printable quote documents.
package pdf

import (
	"fmt"
	"os"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/caua/madeira/internal/format"
)

// QuoteData is everything the document needs, already computed. Totals are
// produced by the pricing engine upstream so the printed figures can never
// diverge from what the API reports.
type QuoteData struct {
	Number          uint
	Date            string // dd/mm/yyyy
	Client          ClientData
	Company         CompanyData
	Items           []ItemData
	Subtotal        float64
	DiscountPercent float64
	Shipping        float64
	GrandTotal      float64
	Notes           string
}

type ClientData struct {
	Name     string
	Document string
	Address  string
	Phone    string
	Email    string
}

type CompanyData struct {
	Name     string
	TaxID    string
	Address  string
	City     string
	Phone    string
	LogoPath string
}

type ItemData struct {
	Quantity  int
	Width     float64 // centimeters
	Height    float64 // centimeters
	Length    float64 // meters
	UnitValue float64 // R$/m³
	Total     float64
}

var headerGray = &props.Color{Red: 200, Green: 200, Blue: 200}

// QuotePDF renders the quote as an A4 sales document and returns the bytes.
func QuotePDF(data QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()
	m := maroto.New(cfg)

	m.AddRow(7, text.NewCol(12, "DOCUMENTO AUXILIAR DE VENDA - ORÇAMENTO",
		props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(9, text.NewCol(12,
		"NÃO É DOCUMENTO FISCAL - NÃO É VÁLIDO COMO RECIBO E COMO\nGARANTIA DE MERCADORIA - NÃO COMPROVA PAGAMENTO",
		props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(4, col.New(12))

	addCompanyBlock(m, data.Company)
	m.AddRow(4, col.New(12))

	addClientBlock(m, data)
	m.AddRow(4, col.New(12))

	addItemsTable(m, data.Items)
	m.AddRow(4, col.New(12))

	addTotalsBlock(m, data)

	if data.Notes != "" {
		m.AddRow(4, col.New(12))
		m.AddRow(8, text.NewCol(12, "Observações: "+data.Notes, props.Text{Size: 8}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addCompanyBlock(m core.Maroto, company CompanyData) {
	info := []struct {
		line string
		prop props.Text
	}{
		{company.Name, props.Text{Size: 11, Style: fontstyle.Bold}},
		{"CNPJ: " + company.TaxID, props.Text{Size: 9}},
		{"Endereço: " + company.Address, props.Text{Size: 9}},
		{"Cidade: " + company.City, props.Text{Size: 9}},
		{"Telefone: " + company.Phone, props.Text{Size: 9}},
	}

	// Logo is optional; a missing file just leaves the column blank.
	if company.LogoPath != "" {
		if _, err := os.Stat(company.LogoPath); err == nil {
			m.AddRow(20,
				image.NewFromFileCol(3, company.LogoPath, props.Rect{Center: true}),
				col.New(9),
			)
		}
	}
	for _, l := range info {
		m.AddRow(5, text.NewCol(12, l.line, l.prop))
	}
}

func addClientBlock(m core.Maroto, data QuoteData) {
	m.AddRow(6, text.NewCol(12, "Identificação do Solicitante",
		props.Text{Size: 9, Style: fontstyle.Bold, Left: 1, Top: 1})).
		WithStyle(&props.Cell{BackgroundColor: headerGray})

	addInfoRow(m, "Orçamento:", fmt.Sprintf("Nº %d - %s", data.Number, data.Date))
	addInfoRow(m, "Cliente:", data.Client.Name)
	addInfoRow(m, "CPF/CNPJ:", data.Client.Document)
	addInfoRow(m, "Endereço:", data.Client.Address)
	addInfoRow(m, "Telefone:", data.Client.Phone)
	addInfoRow(m, "E-mail:", data.Client.Email)
}

func addInfoRow(m core.Maroto, label, value string) {
	m.AddRow(5,
		text.NewCol(3, label, props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(9, value, props.Text{Size: 9}),
	)
}

func addItemsTable(m core.Maroto, items []ItemData) {
	m.AddRow(6,
		headerCell(1, "QUANT."),
		headerCell(2, "LARGURA (cm)"),
		headerCell(2, "ALTURA (cm)"),
		headerCell(3, "COMPRIMENTO (m)"),
		headerCell(2, "VALOR UND. (R$/m³)"),
		headerCell(2, "TOTAL (R$)"),
	).WithStyle(&props.Cell{BackgroundColor: headerGray})

	for _, it := range items {
		m.AddRow(5,
			text.NewCol(1, fmt.Sprintf("%d", it.Quantity), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, format.Dimension(it.Width), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, format.Dimension(it.Height), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(3, format.Dimension(it.Length), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, format.Money(it.UnitValue), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, format.Currency(it.Total), props.Text{Size: 9, Align: align.Center}),
		)
	}
}

func headerCell(size int, label string) core.Col {
	return text.NewCol(size, label, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1})
}

func addTotalsBlock(m core.Maroto, data QuoteData) {
	addTotalRow(m, "Subtotal:", format.Currency(data.Subtotal))
	addTotalRow(m, "Desconto (%):", format.Money(data.DiscountPercent))
	addTotalRow(m, "Frete:", format.Currency(data.Shipping))
	addTotalRow(m, "Total Geral:", format.Currency(data.GrandTotal))
}

func addTotalRow(m core.Maroto, label, value string) {
	m.AddRow(5,
		col.New(6),
		text.NewCol(3, label, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, value, props.Text{Size: 9, Align: align.Right}),
	)
}
