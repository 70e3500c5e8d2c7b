package metrics

// CSV export and terminal summary formatting.

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

var csvHeader = []string{
	"timestamp",
	"run_id",
	"host",
	"device",
	"operation",
	"success",
	"rtt_ms",
	"error",
}

// WriteCSV writes samples to path with a header row.
func WriteCSV(path string, samples []Sample) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, m := range samples {
		record := []string{
			m.Timestamp.Format(time.RFC3339Nano),
			m.RunID,
			m.Host,
			m.Device,
			string(m.Operation),
			fmt.Sprintf("%t", m.Success),
			formatRTT(m.RTTMs),
			m.Error,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

func formatRTT(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.3f", v)
}

// FormatSummary renders a summary for the terminal.
func FormatSummary(s *Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Operations: %d total, %d ok, %d failed\n",
		s.TotalOperations, s.SuccessfulOps, s.FailedOps)
	if s.TimeoutCount > 0 || s.ConnectionFailures > 0 {
		fmt.Fprintf(&sb, "Failures:   %d timeouts, %d connection failures\n",
			s.TimeoutCount, s.ConnectionFailures)
	}
	if s.SuccessfulOps > 0 {
		fmt.Fprintf(&sb, "RTT:        min %.3fms  avg %.3fms  max %.3fms\n",
			s.MinRTT, s.AvgRTT, s.MaxRTT)
		fmt.Fprintf(&sb, "Percentile: p50 %.3fms  p90 %.3fms  p95 %.3fms  p99 %.3fms\n",
			s.P50RTT, s.P90RTT, s.P95RTT, s.P99RTT)
	}

	if len(s.ByOperation) > 0 {
		sb.WriteString("\nBy operation:\n")
		ops := make([]string, 0, len(s.ByOperation))
		for op := range s.ByOperation {
			ops = append(ops, string(op))
		}
		sort.Strings(ops)
		for _, op := range ops {
			st := s.ByOperation[OperationType(op)]
			fmt.Fprintf(&sb, "  %-6s %d ops, %d failed, avg %.3fms\n",
				op, st.Count, st.Failed, st.AvgRTT)
		}
	}

	if len(s.ByDevice) > 0 {
		sb.WriteString("\nBy device:\n")
		devices := make([]string, 0, len(s.ByDevice))
		for dev := range s.ByDevice {
			devices = append(devices, dev)
		}
		sort.Strings(devices)
		for _, dev := range devices {
			st := s.ByDevice[dev]
			fmt.Fprintf(&sb, "  %-8s %d ops, %d failed, avg %.3fms\n",
				dev, st.Count, st.Failed, st.AvgRTT)
		}
	}

	return sb.String()
}
