package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// ReadCSV reads a metrics CSV written by WriteCSV and returns the samples.
// Unknown columns are ignored so older files keep loading.
func ReadCSV(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metrics CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[col] = i
	}
	for _, col := range []string{"timestamp", "operation", "success", "rtt_ms"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("CSV missing required column: %s", col)
		}
	}

	field := func(record []string, col string) string {
		if idx, ok := colIndex[col]; ok && idx < len(record) {
			return record[idx]
		}
		return ""
	}

	var samples []Sample
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", row+1, err)
		}
		row++

		m := Sample{
			RunID:     field(record, "run_id"),
			Host:      field(record, "host"),
			Device:    field(record, "device"),
			Operation: OperationType(field(record, "operation")),
			Success:   field(record, "success") == "true",
			Error:     field(record, "error"),
		}
		if t, err := time.Parse(time.RFC3339Nano, field(record, "timestamp")); err == nil {
			m.Timestamp = t
		}
		if v, err := strconv.ParseFloat(field(record, "rtt_ms"), 64); err == nil {
			m.RTTMs = v
		}
		samples = append(samples, m)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no data rows in CSV file")
	}
	return samples, nil
}
