package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the header and then every row in order.
// Fields containing the delimiter, quotes or newlines are quoted.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d: has %d columns, expected %d", i+1, len(row), len(t.Header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
