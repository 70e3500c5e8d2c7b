package metrics

// RTT metrics collection for controller exchanges.

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// OperationType classifies one exchange.
type OperationType string

const (
	OperationRead  OperationType = "READ"
	OperationWrite OperationType = "WRITE"
	OperationProbe OperationType = "PROBE"
)

// Sample records one exchange against a controller.
type Sample struct {
	Timestamp time.Time
	RunID     string
	Host      string
	Device    string
	Operation OperationType
	Success   bool
	RTTMs     float64
	Error     string
}

// Sink collects samples and maintains an incremental summary.
type Sink struct {
	mu      sync.RWMutex
	samples []Sample
	summary *Summary
}

// Summary contains aggregated statistics over a set of samples.
type Summary struct {
	TotalOperations    int
	SuccessfulOps      int
	FailedOps          int
	TimeoutCount       int
	ConnectionFailures int
	MinRTT             float64
	MaxRTT             float64
	AvgRTT             float64
	P50RTT             float64
	P90RTT             float64
	P95RTT             float64
	P99RTT             float64
	RTTBuckets         map[string]int
	ByOperation        map[OperationType]*OperationStats
	ByDevice           map[string]*OperationStats
}

// OperationStats aggregates one operation type or one device.
type OperationStats struct {
	Count   int
	Success int
	Failed  int
	MinRTT  float64
	MaxRTT  float64
	AvgRTT  float64
	sumRTT  float64
}

func newSummary() *Summary {
	return &Summary{
		RTTBuckets:  make(map[string]int),
		ByOperation: make(map[OperationType]*OperationStats),
		ByDevice:    make(map[string]*OperationStats),
	}
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{summary: newSummary()}
}

// Record adds one sample.
func (s *Sink) Record(m Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, m)
	s.updateSummary(m)
}

// Samples returns a copy of all recorded samples.
func (s *Sink) Samples() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// GetSummary returns aggregated statistics, including percentiles computed
// over the samples recorded so far.
func (s *Sink) GetSummary() *Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &Summary{
		TotalOperations:    s.summary.TotalOperations,
		SuccessfulOps:      s.summary.SuccessfulOps,
		FailedOps:          s.summary.FailedOps,
		TimeoutCount:       s.summary.TimeoutCount,
		ConnectionFailures: s.summary.ConnectionFailures,
		MinRTT:             s.summary.MinRTT,
		MaxRTT:             s.summary.MaxRTT,
		AvgRTT:             s.summary.AvgRTT,
		RTTBuckets:         make(map[string]int),
		ByOperation:        make(map[OperationType]*OperationStats),
		ByDevice:           make(map[string]*OperationStats),
	}
	for op, st := range s.summary.ByOperation {
		cp := *st
		out.ByOperation[op] = &cp
	}
	for dev, st := range s.summary.ByDevice {
		cp := *st
		out.ByDevice[dev] = &cp
	}

	rtts := make([]float64, 0, len(s.samples))
	for _, m := range s.samples {
		if m.Success && m.RTTMs > 0 {
			rtts = append(rtts, m.RTTMs)
			incrementBucket(out.RTTBuckets, m.RTTMs)
		}
	}
	p := computePercentiles(rtts)
	out.P50RTT, out.P90RTT, out.P95RTT, out.P99RTT = p[0], p[1], p[2], p[3]
	return out
}

// Summarize aggregates a slice of samples, e.g. ones re-read from a CSV.
func Summarize(samples []Sample) *Summary {
	sink := NewSink()
	for _, m := range samples {
		sink.Record(m)
	}
	return sink.GetSummary()
}

func (s *Sink) updateSummary(m Sample) {
	sum := s.summary
	sum.TotalOperations++

	if m.Success {
		sum.SuccessfulOps++
		if m.RTTMs > 0 {
			if sum.MinRTT == 0 || m.RTTMs < sum.MinRTT {
				sum.MinRTT = m.RTTMs
			}
			if m.RTTMs > sum.MaxRTT {
				sum.MaxRTT = m.RTTMs
			}
			total := sum.AvgRTT * float64(sum.SuccessfulOps-1)
			sum.AvgRTT = (total + m.RTTMs) / float64(sum.SuccessfulOps)
		}
	} else {
		sum.FailedOps++
		if strings.Contains(m.Error, "timeout") || strings.Contains(m.Error, "deadline exceeded") {
			sum.TimeoutCount++
		}
		if strings.Contains(m.Error, "connection") || strings.Contains(m.Error, "connect") {
			sum.ConnectionFailures++
		}
	}

	updateStats(sum.ByOperation, m.Operation, m)
	if m.Device != "" {
		updateStats(sum.ByDevice, m.Device, m)
	}
}

func updateStats[K comparable](stats map[K]*OperationStats, key K, m Sample) {
	st, ok := stats[key]
	if !ok {
		st = &OperationStats{}
		stats[key] = st
	}
	st.Count++
	if !m.Success {
		st.Failed++
		return
	}
	st.Success++
	if m.RTTMs > 0 {
		if st.MinRTT == 0 || m.RTTMs < st.MinRTT {
			st.MinRTT = m.RTTMs
		}
		if m.RTTMs > st.MaxRTT {
			st.MaxRTT = m.RTTMs
		}
		st.sumRTT += m.RTTMs
		st.AvgRTT = st.sumRTT / float64(st.Success)
	}
}

func incrementBucket(buckets map[string]int, value float64) {
	switch {
	case value < 1:
		buckets["lt_1ms"]++
	case value < 5:
		buckets["1_5ms"]++
	case value < 10:
		buckets["5_10ms"]++
	case value < 50:
		buckets["10_50ms"]++
	case value < 100:
		buckets["50_100ms"]++
	case value < 500:
		buckets["100_500ms"]++
	default:
		buckets["gt_500ms"]++
	}
}

func computePercentiles(values []float64) [4]float64 {
	var result [4]float64
	if len(values) == 0 {
		return result
	}
	sort.Float64s(values)
	result[0] = percentile(values, 0.50)
	result[1] = percentile(values, 0.90)
	result[2] = percentile(values, 0.95)
	result[3] = percentile(values, 0.99)
	return result
}

func percentile(sorted []float64, p float64) float64 {
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
