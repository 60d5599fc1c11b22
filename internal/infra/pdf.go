package infra

// Monthly report export in PDF form. One A4 page per report: a header with
// the period, then a small table of the four cached figures. The file lands
// in storagePath/report_{id}.pdf and is streamed back by the handler.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

var reportMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// GenerateReportPDF renders a monthly report and returns the path of the
// written file. storagePath is created if needed.
func GenerateReportPDF(report *model.Report, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("report_%s.pdf", report.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "FungiCount", "", 1, "L", false, 0, "")

	month := ""
	if report.Month >= 1 && report.Month <= 12 {
		month = reportMonths[report.Month-1]
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Rapport mensuel — %s %d", month, report.Year)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(6)

	rows := []struct {
		label, value string
	}{
		{"Ventes", fmt.Sprintf("%d", report.TotalSales)},
		{"Chiffre d'affaires", report.Revenue.StringFixed(2) + " €"},
		{"Marge brute", report.GrossMargin.StringFixed(2) + " €"},
		{"Marge nette", report.NetMargin.StringFixed(2) + " €"},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(80, 9, tr(row.label), "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(90, 9, tr(row.value), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Généré le %s", report.CreatedAt.Format("02/01/2006"))), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
