package documents

import (
	"context"
	"io"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
	"quote_desk/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	quoteSheet      = "Quote"
	dateLayout      = "2006-01-02"
)

var lineHeaders = []string{"Service", "Category", "Location", "Date", "Quantity", "Unit price", "Line total"}

// XLSXRenderer writes a quote as a single sheet workbook: a short header
// block, one row per line and a total row.
type XLSXRenderer struct{}

var _ interfaces.IQuoteRenderer = XLSXRenderer{}

func (XLSXRenderer) ContentType() string { return XLSXContentType }

func (XLSXRenderer) Render(_ context.Context, doc interfaces.QuoteDocument, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return err
	}

	q := doc.Quote
	header := [][]any{
		{"Quote", q.ID},
		{"Customer", doc.Customer.Name},
		{"Email", doc.Customer.Email},
		{"Status", string(q.Status)},
		{"Created", q.CreatedAt.Format(dateLayout)},
	}
	row := 1
	for _, values := range header {
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	headers := make([]any, len(lineHeaders))
	for i, h := range lineHeaders {
		headers[i] = h
	}
	if err := setRow(f, row, headers); err != nil {
		return err
	}

	for _, line := range q.Services {
		row++
		svc := doc.Services[line.ServiceID]
		name := svc.Name
		if name == "" {
			name = line.ServiceID
		}
		values := []any{
			name,
			svc.Category,
			svc.Location,
			line.Date.Format(dateLayout),
			line.Quantity,
			line.Price,
			pricing.Total([]entities.QuoteService{line}),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
	}

	row++
	if err := setCell(f, 6, row, "Total"); err != nil {
		return err
	}
	if err := setCell(f, 7, row, pricing.Total(q.Services)); err != nil {
		return err
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []any) error {
	for i, v := range values {
		if err := setCell(f, i+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(quoteSheet, cell, v)
}
