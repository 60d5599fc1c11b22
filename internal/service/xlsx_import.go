package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
)

// Expected workbook layout: first sheet, a header row, then one sale per
// row. Columns are matched by header name (case-insensitive), so column
// order does not matter.
var xlsxColumns = map[string]string{
	"customer":   "customerName",
	"client":     "customerName",
	"sku":        "productSku",
	"product":    "productSku",
	"quantity":   "quantity",
	"quantite":   "quantity",
	"totalprice": "totalPrice",
	"total":      "totalPrice",
	"date":       "saleDate",
	"saledate":   "saleDate",
	"channel":    "channel",
	"canal":      "channel",
	"source":     "source",
}

func parseSalesWorkbook(r io.Reader) ([]dto.BatchSaleRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("xlsx file has no data rows")
	}

	// column index -> canonical field
	fields := make(map[int]string, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(header), " ", ""))
		if field, ok := xlsxColumns[key]; ok {
			fields[i] = field
		}
	}

	out := make([]dto.BatchSaleRow, 0, len(rows)-1)
	for n, cells := range rows[1:] {
		row := dto.BatchSaleRow{}
		empty := true
		for i, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			empty = false
			switch fields[i] {
			case "customerName":
				row.CustomerName = cell
			case "productSku":
				row.ProductSKU = cell
			case "quantity":
				q, err := strconv.Atoi(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid quantity %q", n+2, cell)
				}
				row.Quantity = q
			case "totalPrice":
				p, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", "."))
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid total price %q", n+2, cell)
				}
				row.TotalPrice = p
			case "saleDate":
				t, err := parseCellDate(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d: invalid date %q", n+2, cell)
				}
				row.SaleDate = t
			case "channel":
				row.Channel = strings.ToLower(cell)
			case "source":
				row.Source = cell
			}
		}
		if empty {
			continue
		}
		if row.CustomerName == "" || row.ProductSKU == "" || row.Quantity <= 0 {
			return nil, fmt.Errorf("row %d: customer, sku and a positive quantity are required", n+2)
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("xlsx file has no data rows")
	}
	return out, nil
}

func parseCellDate(cell string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006", "01-02-06"} {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
