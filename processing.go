// processing.go
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func parseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Cell{Raw: raw, Num: v, Numeric: true}
		}
	}
	return Cell{Raw: raw}
}

func processCSV(file io.Reader) (*Dataset, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(records)
}

func processExcel(file io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets")
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return datasetFromRecords(records)
}

// datasetFromRecords builds the Dataset from raw string records. The first
// record is the header; blank header cells get positional names. Ragged
// rows are kept as-is, their missing cells simply never read as numeric.
func datasetFromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no rows")
	}
	fields := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		fields[i] = h
	}
	rows := make([][]Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for i, raw := range rec {
			row[i] = parseCell(raw)
		}
		rows = append(rows, row)
	}
	return &Dataset{Fields: fields, Rows: rows}, nil
}
