package export

import (
	"fmt"
	"io"

	"Gamestore/models/postgres"

	"github.com/tealeg/xlsx"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SheetName   = "Transactions"
	dateLayout  = "2006-01-02 15:04:05"
)

var headers = []string{
	"Reference", "Date", "Payment Method", "Status", "Transaction Total",
	"Game ID", "Game", "Price",
}

// WriteTransactionsXLSX writes a workbook with one row per purchased game
func WriteTransactionsXLSX(w io.Writer, transactions []postgres.Transaction) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	// Header row
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, t := range transactions {
		for _, line := range t.Games {
			row := sheet.AddRow()
			row.AddCell().SetValue(t.Reference)
			row.AddCell().SetValue(t.CreatedAt.UTC().Format(dateLayout))
			row.AddCell().SetValue(t.PaymentMethod)
			row.AddCell().SetValue(string(t.Status))
			row.AddCell().SetFloatWithFormat(t.Amount.InexactFloat64(), "0.00")
			row.AddCell().SetInt(int(line.GameID))

			title := ""
			if line.Game != nil {
				title = line.Game.Title
			}
			row.AddCell().SetValue(title)
			row.AddCell().SetFloatWithFormat(line.Price.InexactFloat64(), "0.00")
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Filename names the download for a user
func Filename(username string) string {
	return fmt.Sprintf("transactions-%s.xlsx", username)
}
