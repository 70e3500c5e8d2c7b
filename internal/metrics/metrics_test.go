package metrics

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sample(op OperationType, device string, rtt float64, success bool, errMsg string) Sample {
	return Sample{
		Timestamp: time.Now(),
		RunID:     "run-1",
		Host:      "192.168.1.10:2555",
		Device:    device,
		Operation: op,
		Success:   success,
		RTTMs:     rtt,
		Error:     errMsg,
	}
}

func TestSinkSummary(t *testing.T) {
	sink := NewSink()
	sink.Record(sample(OperationRead, "D500", 2.0, true, ""))
	sink.Record(sample(OperationRead, "D500", 4.0, true, ""))
	sink.Record(sample(OperationWrite, "M1600", 6.0, true, ""))
	sink.Record(sample(OperationRead, "D500", 0, false, "i/o timeout"))
	sink.Record(sample(OperationWrite, "D500", 0, false, "connection refused"))

	s := sink.GetSummary()
	if s.TotalOperations != 5 || s.SuccessfulOps != 3 || s.FailedOps != 2 {
		t.Errorf("counts = %d/%d/%d, want 5/3/2", s.TotalOperations, s.SuccessfulOps, s.FailedOps)
	}
	if s.TimeoutCount != 1 {
		t.Errorf("TimeoutCount = %d, want 1", s.TimeoutCount)
	}
	if s.ConnectionFailures != 1 {
		t.Errorf("ConnectionFailures = %d, want 1", s.ConnectionFailures)
	}
	if s.MinRTT != 2.0 || s.MaxRTT != 6.0 {
		t.Errorf("Min/Max = %.1f/%.1f, want 2.0/6.0", s.MinRTT, s.MaxRTT)
	}
	if s.AvgRTT != 4.0 {
		t.Errorf("AvgRTT = %.1f, want 4.0", s.AvgRTT)
	}
	if s.P99RTT != 6.0 {
		t.Errorf("P99RTT = %.1f, want 6.0", s.P99RTT)
	}

	read := s.ByOperation[OperationRead]
	if read == nil || read.Count != 3 || read.Failed != 1 {
		t.Errorf("READ stats = %+v, want 3 ops, 1 failed", read)
	}
	d500 := s.ByDevice["D500"]
	if d500 == nil || d500.Count != 4 {
		t.Errorf("D500 stats = %+v, want 4 ops", d500)
	}
}

func TestSummaryPercentiles(t *testing.T) {
	sink := NewSink()
	for i := 1; i <= 100; i++ {
		sink.Record(sample(OperationRead, "D500", float64(i), true, ""))
	}
	s := sink.GetSummary()
	if s.P50RTT != 50 {
		t.Errorf("P50RTT = %.1f, want 50", s.P50RTT)
	}
	if s.P90RTT != 90 {
		t.Errorf("P90RTT = %.1f, want 90", s.P90RTT)
	}
	if s.P99RTT != 99 {
		t.Errorf("P99RTT = %.1f, want 99", s.P99RTT)
	}
}

func TestRTTBuckets(t *testing.T) {
	sink := NewSink()
	for _, rtt := range []float64{0.5, 2, 7, 20, 70, 200, 900} {
		sink.Record(sample(OperationRead, "D500", rtt, true, ""))
	}
	s := sink.GetSummary()
	for _, bucket := range []string{"lt_1ms", "1_5ms", "5_10ms", "10_50ms", "50_100ms", "100_500ms", "gt_500ms"} {
		if s.RTTBuckets[bucket] != 1 {
			t.Errorf("bucket %s = %d, want 1", bucket, s.RTTBuckets[bucket])
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	samples := []Sample{
		sample(OperationRead, "D500", 1.234, true, ""),
		sample(OperationWrite, "M1600", 2.5, true, ""),
		sample(OperationRead, "D500", 0, false, "i/o timeout"),
	}
	path := filepath.Join(t.TempDir(), "bench.csv")
	if err := WriteCSV(path, samples); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("ReadCSV = %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i].Device != samples[i].Device ||
			got[i].Operation != samples[i].Operation ||
			got[i].Success != samples[i].Success ||
			got[i].RTTMs != samples[i].RTTMs ||
			got[i].Error != samples[i].Error {
			t.Errorf("sample %d = %+v, want %+v", i, got[i], samples[i])
		}
	}
}

func TestReadCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if _, err := ReadCSV(path); err == nil {
		t.Fatal("expected error for CSV without data rows")
	}
}

func TestFormatSummary(t *testing.T) {
	sink := NewSink()
	sink.Record(sample(OperationRead, "D500", 2.0, true, ""))
	sink.Record(sample(OperationWrite, "M1600", 0, false, "i/o timeout"))

	out := FormatSummary(sink.GetSummary())
	for _, want := range []string{"2 total", "1 timeouts", "READ", "D500"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}
