package utils

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// WriteXLSX saves a single-sheet workbook with a header row.
func WriteXLSX(path, sheetName string, headers []string, rows [][]string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetValue(v)
		}
	}

	return file.Save(path)
}

func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
