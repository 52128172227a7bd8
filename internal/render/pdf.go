// Package render lays an invoice out onto a fixed-size printable page. It
// consumes only the read surface of the billing package: party display
// lines, document attributes and the derived totals. Everything
// locale-sensitive happens here, the billing core never formats.
package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"facture/internal/billing"
	"facture/internal/logger"
)

// Page geometry in millimetres, A4 portrait.
const (
	pageLeft   = 15.0
	pageTop    = 20.0
	pageWidth  = 180.0
	lineHeight = 4.2
)

var footerParagraphs = []struct {
	title string
	body  string
}{
	{
		"En conformité de l'article L 441-6 du Code de commerce:",
		"Pas d'escompte pour paiement anticipé. Le paiement sera à effectuer au plus tard au trentième jour suivant la date de réception de la facture. Tout règlement effectué après expiration de ce délai donnera lieu à une pénalité fixée à 15% du montant total de la facture, par mois de retard entamé, ainsi qu'à une indemnité forfaitaire pour frais de recouvrement d'un montant de 40€.",
	},
	{
		"Informations concernant l'URSSAF:",
		"Conformément à l'article L382-4 du Code de la Sécurité Sociale et L6331-65 du Code du Travail, le client doit s'acquitter d'une contribution personnelle de 1,1% de la rémunération brute hors taxes directement auprès de l'URSSAF.",
	},
	{
		"Informations concernant les droits d'exploitation:",
		"{provider} ne cède que les droits d'exploitation de la création limités aux termes du présent document et reste propriétaire de l'intégralité des créations tant que la prestation n'est pas entièrement réglée.",
	},
}

// PDF renders one invoice into a PDF document.
type PDF struct {
	invoice   *billing.Invoice
	formatter *Formatter
	log       zerolog.Logger
}

// NewPDF creates a renderer for the given invoice. The invoice is treated as
// read-only input, except that an empty Number is filled in with the
// generated document id.
func NewPDF(invoice *billing.Invoice) *PDF {
	return &PDF{
		invoice:   invoice,
		formatter: NewFormatter(invoice.Currency, invoice.CurrencyLocale),
		log:       logger.WithComponent("render"),
	}
}

// Generate writes the document under outDir and returns the written path.
func (r *PDF) Generate(outDir string) (string, error) {
	date := r.invoice.Date
	if date.IsZero() {
		date = time.Now()
	}

	id, path, err := OutputPath(outDir, r.invoice, date)
	if err != nil {
		return "", err
	}
	if r.invoice.Number == "" {
		r.invoice.Number = id
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(r.invoice.Subject), false)
	pdf.SetAuthor(tr(r.invoice.Creator().Name), false)
	pdf.SetCreator(tr(r.invoice.Provider().Summary), false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d / {nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.SetLineWidth(0.2)
	pdf.AddPage()

	r.drawHeader(pdf, tr)
	r.drawParties(pdf, tr)
	r.drawPayment(pdf, tr)
	r.drawDates(pdf, tr)
	r.drawSubject(pdf, tr)
	r.drawItems(pdf, tr)
	r.drawTotals(pdf, tr)
	r.drawContributions(pdf, tr)
	r.drawNote(pdf, tr)
	r.drawFooter(pdf, tr)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF %s: %w", path, err)
	}

	r.log.Info().
		Str("id", r.invoice.Number).
		Str("path", path).
		Int("items", len(r.invoice.Items())).
		Msg("Invoice PDF generated")
	return path, nil
}

func (r *PDF) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "", 15)
	pdf.SetXY(pageLeft, pageTop)
	pdf.CellFormat(pageWidth/2, 8, tr(r.invoice.Number), "", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth/2, 8, tr(fmt.Sprintf("n° %s", r.invoice.Number)),
		"", 1, "R", false, 0, "")
}

// drawParties renders the provider and client address blocks side by side
// inside a frame, with the logo next to the provider when one is set.
func (r *PDF) drawParties(pdf *gofpdf.Fpdf, tr func(string) string) {
	top := pageTop + 12.0
	pdf.Rect(pageLeft, top, pageWidth, 56, "D")
	pdf.Line(pageLeft+pageWidth/2, top, pageLeft+pageWidth/2, top+56)

	r.drawAddressBlock(pdf, tr, pageLeft+3, top+3, "Émetteur", r.invoice.Provider())
	r.drawAddressBlock(pdf, tr, pageLeft+pageWidth/2+3, top+3, "Destinataire", r.invoice.Client())

	if logo := r.invoice.Provider().LogoPath; logo != "" {
		if _, err := os.Stat(logo); err == nil {
			pdf.ImageOptions(logo, pageLeft+pageWidth/2-28, top+3, 25, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		} else {
			r.log.Warn().Str("logo", logo).Msg("Logo file not found, skipping")
		}
	}
}

func (r *PDF) drawAddressBlock(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, header string, party *billing.Party) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(80, 6, tr(header), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range party.AddressLines() {
		pdf.CellFormat(80, lineHeight, tr(line), "", 2, "L", false, 0, "")
	}
	pdf.Ln(2)
	for _, line := range party.ContactLines() {
		if line != "" {
			pdf.CellFormat(80, lineHeight, tr(line), "", 2, "L", false, 0, "")
		}
	}
	for _, line := range party.RegistrationLines() {
		pdf.CellFormat(80, lineHeight, tr(line), "", 2, "L", false, 0, "")
	}
	if party.Note != "" {
		pdf.SetFont("Helvetica", "", 6)
		pdf.MultiCell(80, 3, tr(party.Note), "", "L", false)
		pdf.SetFont("Helvetica", "", 8)
	}
}

func (r *PDF) drawPayment(pdf *gofpdf.Fpdf, tr func(string) string) {
	provider := r.invoice.Provider()
	pdf.SetXY(pageLeft+2, pageTop+72)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(88, lineHeight, tr("Informations de paiement"), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	lines := []string{provider.BankName, provider.BankIdentifier()}
	if r.invoice.IBAN != "" {
		lines = append(lines, fmt.Sprintf("IBAN: %s", r.invoice.IBAN))
	}
	if r.invoice.SWIFT != "" {
		lines = append(lines, fmt.Sprintf("SWIFT: %s", r.invoice.SWIFT))
	}
	for _, line := range lines {
		if line != "" {
			pdf.CellFormat(88, lineHeight, tr(line), "", 2, "L", false, 0, "")
		}
	}
}

func (r *PDF) drawDates(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetXY(pageLeft+pageWidth/2+2, pageTop+72)
	pdf.SetFont("Helvetica", "", 10)

	var lines []string
	if !r.invoice.Date.IsZero() {
		lines = append(lines, fmt.Sprintf("Date de facturation: %s", r.invoice.Date.Format("02/01/2006")))
	}
	if !r.invoice.DueDate.IsZero() {
		lines = append(lines, fmt.Sprintf("Date d'échéance: %s", r.invoice.DueDate.Format("02/01/2006")))
	}
	if !r.invoice.TaxableDate.IsZero() {
		lines = append(lines, fmt.Sprintf("Date de prestation: %s", r.invoice.TaxableDate.Format("02/01/2006")))
	}
	if r.invoice.PayType != "" {
		lines = append(lines, fmt.Sprintf("Règlement: %s", r.invoice.PayType))
	}
	for _, line := range lines {
		pdf.CellFormat(86, 5, tr(line), "", 2, "L", false, 0, "")
	}
}

func (r *PDF) drawSubject(pdf *gofpdf.Fpdf, tr func(string) string) {
	if r.invoice.Subject == "" {
		return
	}
	pdf.SetXY(pageLeft+2, pageTop+95)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageWidth, 6, tr(fmt.Sprintf("Objet: %s", r.invoice.Subject)), "", 1, "L", false, 0, "")
}

// drawItems renders the item table. The mode selects which two value
// columns appear next to the description; the total column is always last.
func (r *PDF) drawItems(pdf *gofpdf.Fpdf, tr func(string) string) {
	top := pageTop + 105.0
	pdf.SetXY(pageLeft+2, top)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageWidth, 6, tr("Élements"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(pageLeft)
	var colA, colB string
	switch r.invoice.Mode() {
	case billing.ModeRoyalties:
		colA, colB = "droits d'auteur", "prix de vente"
	default:
		colA, colB = "unités", "prix unitaire"
	}
	pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 5, tr(colA), "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 5, tr(colB), "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 5, tr("total"), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range r.invoice.Items() {
		pdf.Line(pageLeft, pdf.GetY(), pageLeft+pageWidth, pdf.GetY())
		y := pdf.GetY()

		pdf.SetXY(pageLeft+2, y+1)
		pdf.MultiCell(93, 3.2, tr(item.Description()), "", "L", false)
		descBottom := pdf.GetY()

		var cellA, cellB string
		switch r.invoice.Mode() {
		case billing.ModeRoyalties:
			cellA = r.formatter.Rate(item.Tax())
			cellB = r.formatter.Amount(item.Price())
		default:
			cellA = r.formatter.Quantity(item.Count(), item.Unit())
			cellB = r.formatter.Amount(item.Price())
		}
		pdf.SetXY(pageLeft+95, y+1)
		pdf.CellFormat(25, 3.2, tr(cellA), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 3.2, tr(cellB), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 3.2, tr(r.formatter.Amount(item.Total())), "", 1, "R", false, 0, "")

		if descBottom > pdf.GetY() {
			pdf.SetY(descBottom)
		}
		pdf.Ln(1.5)
	}
}

func (r *PDF) drawTotals(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.Ln(6)
	pdf.SetX(pageLeft)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(120, 6, tr("Montant à verser"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 6, tr(r.formatter.Amount(r.invoice.Price())), "", 1, "R", false, 0, "")
	pdf.Line(pageLeft, pdf.GetY(), pageLeft+pageWidth, pdf.GetY())

	if note := r.invoice.Provider().VATNote; note != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetX(pageLeft+2)
		pdf.CellFormat(pageWidth, 4, tr(note), "", 1, "L", false, 0, "")
	}

	breakdown := r.invoice.TaxBreakdown()
	taxed := false
	for _, row := range breakdown {
		if !row.Rate.IsZero() {
			taxed = true
			break
		}
	}
	if taxed {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetX(pageLeft)
		pdf.CellFormat(30, 4, tr("TVA"), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 4, tr("Montant HT"), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 4, tr("TVA due"), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 4, tr("Montant TTC"), "", 1, "R", false, 0, "")
		for _, row := range breakdown {
			pdf.SetX(pageLeft)
			pdf.CellFormat(30, 4, tr(r.formatter.Rate(row.Rate)), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 4, tr(r.formatter.Amount(row.Total)), "", 0, "R", false, 0, "")
			pdf.CellFormat(50, 4, tr(r.formatter.Amount(row.Tax)), "", 0, "R", false, 0, "")
			pdf.CellFormat(50, 4, tr(r.formatter.Amount(row.TotalWithTax)), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetX(pageLeft)
		pdf.CellFormat(130, 5, tr("Total TTC"), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 5, tr(r.formatter.Amount(r.invoice.PriceWithTax())), "", 1, "R", false, 0, "")
	}

	if r.invoice.RoundingEnabled {
		if diff := r.invoice.DifferenceInRounding(); !diff.IsZero() {
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetX(pageLeft)
			pdf.CellFormat(130, 4, tr("Arrondi"), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 4, tr(r.formatter.Amount(diff)), "", 1, "R", false, 0, "")
		}
	}
}

// drawContributions renders the payer-side levies declared on the provider,
// computed on the pre-tax total. The block mirrors the totals block: summed
// amount in bold next to the heading, one detail line per levy below.
func (r *PDF) drawContributions(pdf *gofpdf.Fpdf, tr func(string) string) {
	lines, total := r.invoice.Contributions()
	if len(lines) == 0 {
		return
	}

	pdf.Ln(4)
	pdf.SetX(pageLeft)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(120, 6, tr("Contributions dues par le diffuseur à l'URSSAF"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 6, tr(r.formatter.Amount(total)), "", 1, "R", false, 0, "")
	pdf.Line(pageLeft, pdf.GetY(), pageLeft+pageWidth, pdf.GetY())

	pdf.SetFont("Helvetica", "", 7)
	for _, line := range lines {
		pdf.SetX(pageLeft+2)
		label := fmt.Sprintf("%s: %s du montant brut HT", line.Label, r.formatter.Rate(line.Rate))
		pdf.CellFormat(128, 4, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 4, tr(r.formatter.Amount(line.Amount)), "", 1, "R", false, 0, "")
	}
}

func (r *PDF) drawNote(pdf *gofpdf.Fpdf, tr func(string) string) {
	if r.invoice.Note == "" {
		return
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(pageLeft)
	pdf.MultiCell(pageWidth, 4, tr(r.invoice.Note), "", "L", false)
}

func (r *PDF) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	provider := r.invoice.Provider().Summary
	pdf.SetY(-72)
	for _, paragraph := range footerParagraphs {
		pdf.SetX(pageLeft)
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(pageWidth, 4, tr(paragraph.title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetX(pageLeft)
		body := strings.ReplaceAll(paragraph.body, "{provider}", provider)
		pdf.MultiCell(pageWidth, 3.2, tr(body), "", "L", false)
		pdf.Ln(1)
	}

	if stamp := r.invoice.Creator().StampPath; stamp != "" {
		if _, err := os.Stat(stamp); err == nil {
			pdf.ImageOptions(stamp, pageLeft+pageWidth-40, pdf.GetY()-45, 35, 0, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		} else {
			r.log.Warn().Str("stamp", stamp).Msg("Stamp file not found, skipping")
		}
	}
}
