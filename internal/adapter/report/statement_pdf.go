package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"pix-bank/internal/core/domain"
	"pix-bank/internal/core/ports"

	"github.com/phpdave11/gofpdf"
)

const (
	maxRows     = 500
	pageBreakAt = 270.0
)

var columnWidths = []float64{40, 28, 114}

// StatementRenderer implements ports.StatementRenderer as an A4 PDF.
type StatementRenderer struct {
	bankName string
	now      func() time.Time
}

// NewStatementRenderer creates a renderer stamping bankName on each statement.
func NewStatementRenderer(bankName string) *StatementRenderer {
	return &StatementRenderer{bankName: bankName, now: time.Now}
}

var _ ports.StatementRenderer = (*StatementRenderer)(nil)

// Render writes the statement of account, plus its investment wallet when
// wallet is non-nil.
func (r *StatementRenderer) Render(w io.Writer, account *domain.AccountWallet, wallet *domain.InvestmentWallet) error {
	if account == nil {
		return errors.New("statement: nil account")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 14, 14)
	pdf.SetTitle(tr(r.bankName+" statement"), false)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(r.bankName+" - Bank Statement"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr("PIX keys: "+strings.Join(account.PixKeys(), ", ")))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(91, 10, "Account balance", "1", 0, "C", true, 0, "")
	pdf.CellFormat(91, 10, "Invested balance", "1", 1, "C", true, 0, "")

	invested := "-"
	if wallet != nil {
		invested = domain.FormatBRL(wallet.Balance())
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(91, 10, tr(domain.FormatBRL(account.Balance())), "1", 0, "C", false, 0, "")
	pdf.CellFormat(91, 10, tr(invested), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.section(pdf, tr, "Account movements", account.AuditTrail())
	if wallet != nil {
		inv := wallet.Investment()
		title := fmt.Sprintf("Investment %d (%s) movements", inv.ID, inv.Name)
		r.section(pdf, tr, title, wallet.AuditTrail())
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, tr("Generated "+r.now().UTC().Format(time.RFC3339)), "", 0, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("statement: pdf build failed: %w", err)
	}
	return nil
}

func (r *StatementRenderer) section(pdf *gofpdf.Fpdf, tr func(string) string, title string, trail []domain.AuditEntry) {
	if pdf.GetY() > pageBreakAt-20 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(9)

	tableHeader(pdf)
	if len(trail) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No movements", "1", 1, "C", false, 0, "")
		pdf.Ln(4)
		return
	}

	// Newest first, like the history endpoint.
	for i := len(trail) - 1; i >= 0; i-- {
		if len(trail)-1-i >= maxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > pageBreakAt {
			pdf.AddPage()
			tableHeader(pdf)
		}

		e := trail[i]
		pdf.CellFormat(columnWidths[0], 8, e.CreatedAt.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(columnWidths[1], 8, string(e.TargetService), "1", 0, "C", false, 0, "")

		x, y := pdf.GetX(), pdf.GetY()
		pdf.MultiCell(columnWidths[2], 8, tr(trimTo(e.Description, 120)), "1", "L", false)
		if used := pdf.GetY() - y; used > 8 {
			// Stretch the left cells to the wrapped description height.
			pdf.Rect(x-columnWidths[0]-columnWidths[1], y, columnWidths[0], used, "D")
			pdf.Rect(x-columnWidths[1], y, columnWidths[1], used, "D")
		}
	}
	pdf.Ln(4)
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(columnWidths[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(columnWidths[1], 8, "SERVICE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(columnWidths[2], 8, "DESCRIPTION", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
