package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ToCSV writes tabular report data to a CSV file with an optional header row.
func ToCSV(path string, headers []string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cellString(cell)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

// ToXLSX writes tabular report data to an Excel workbook.
func ToXLSX(path string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rowIdx := 1
	if len(headers) > 0 {
		header := make([]any, len(headers))
		for i, h := range headers {
			header[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		rowIdx++
	}
	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		values := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		rowIdx++
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	return nil
}

func cellString(cell any) string {
	if cell == nil {
		return ""
	}
	switch v := cell.(type) {
	case []byte:
		return string(v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount with two decimals and thousands grouping.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("%.2f", amount)
}

// FormatDate formats a date as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}
