package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pkordes/sidequest/internal/domain"
)

// CSV encodes rows with a header line.
func CSV(rows []domain.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
