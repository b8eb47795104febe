package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	headers := []string{"name", "balance"}
	rows := [][]any{
		{"Acme", 150.5},
		{[]byte("Binary & Co"), nil},
	}
	if err := ToCSV(path, headers, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "name" || records[1][0] != "Acme" || records[1][1] != "150.5" {
		t.Fatalf("unexpected content %v", records)
	}
	if records[2][0] != "Binary & Co" || records[2][1] != "" {
		t.Fatalf("byte and nil cells mishandled: %v", records[2])
	}
}

func TestToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	headers := []string{"name", "balance"}
	rows := [][]any{{"Acme", 150.5}}
	if err := ToXLSX(path, headers, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if got, _ := f.GetCellValue(sheet, "A1"); got != "name" {
		t.Fatalf("unexpected A1 %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "A2"); got != "Acme" {
		t.Fatalf("unexpected A2 %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "B2"); got != "150.5" {
		t.Fatalf("unexpected B2 %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1234567.891); got != "1,234,567.89" {
		t.Fatalf("unexpected currency format %q", got)
	}
	if got := FormatCurrency(0); got != "0.00" {
		t.Fatalf("unexpected zero format %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "02-01-2025" {
		t.Fatalf("unexpected date format %q", got)
	}
}
