// Package spreadsheet writes invoice lists as downloadable workbooks.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// InvoiceRow is one exported worksheet row. Money columns are
// preformatted strings.
type InvoiceRow struct {
	Number         string
	IssueDate      string
	DueDate        string
	ClientName     string
	ClientCompany  string
	Status         string
	BillType       string
	Subtotal       string
	TaxAmount      string
	Total          string
	AmountReceived string
	Remaining      string
}

const sheetName = "Invoices"

var header = []interface{}{
	"Invoice Number", "Issue Date", "Due Date", "Client", "Company",
	"Status", "Bill Type", "Subtotal", "Tax", "Total", "Received", "Remaining",
}

// WriteInvoices renders the rows into an xlsx workbook.
func WriteInvoices(rows []InvoiceRow) (io.Reader, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.Number, row.IssueDate, row.DueDate, row.ClientName, row.ClientCompany,
			row.Status, row.BillType, row.Subtotal, row.TaxAmount, row.Total,
			row.AmountReceived, row.Remaining,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
