// Package export renders the transaction list as a CSV artifact.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/localflow/localflow-backend/internal/domain"
)

// csvHeader is the fixed export header row.
var csvHeader = []string{"ID", "Date", "Type", "Category", "Amount", "Note"}

// WriteCSV writes one row per transaction in store order. Fields containing
// commas, quotes or newlines are quoted per RFC 4180, so free-text notes
// survive a round trip.
func WriteCSV(w io.Writer, transactions []*domain.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range transactions {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			t.Date,
			string(t.Type),
			t.Category,
			t.Amount.String(),
			t.Note,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
