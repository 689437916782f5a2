package profiler

import (
	"math"
	"sort"
	"time"
)

// FrameStats is the recorded state of one completed frame. Every duration is
// in nanoseconds.
type FrameStats struct {
	FrameNumber       uint64
	TotalTimeNS       int64
	UpdateTimeNS      int64
	RenderTimeNS      int64
	EntityCount       int
	SystemCount       int
	MemoryUsed        int64
	AllocationCount   uint64
	DeallocationCount uint64
}

// Stats summarizes a window of recorded frame history: central tendency,
// tail percentiles, frame rate, and spike detection. All duration fields
// are nanoseconds.
type Stats struct {
	SampleCount      int
	AvgFrameTimeNS   int64
	MinFrameTimeNS   int64
	MaxFrameTimeNS   int64
	P95NS            int64
	P99NS            int64
	AvgFPS           float64
	MinFPS           float64
	MaxFPS           float64
	SpikeThresholdNS int64
	SpikeCount       int
}

// computeStats derives a Stats snapshot from a window of completed frames.
// A spike is any frame whose total time exceeds twice the average; the
// threshold itself is reported even when no frame crossed it. An empty
// window yields a zero Stats.
func computeStats(frames []FrameStats) Stats {
	n := len(frames)
	if n == 0 {
		return Stats{}
	}

	sorted := make([]int64, n)
	var sum int64
	for i, f := range frames {
		sorted[i] = f.TotalTimeNS
		sum += f.TotalTimeNS
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	avg := sum / int64(n) // integer division on nanoseconds, per contract
	min := sorted[0]
	max := sorted[n-1]

	spikeThreshold := avg * 2
	spikes := 0
	for _, v := range sorted {
		if v > spikeThreshold {
			spikes++
		}
	}

	return Stats{
		SampleCount:      n,
		AvgFrameTimeNS:   avg,
		MinFrameTimeNS:   min,
		MaxFrameTimeNS:   max,
		P95NS:            percentile(sorted, 0.95),
		P99NS:            percentile(sorted, 0.99),
		AvgFPS:           fps(avg),
		MinFPS:           fps(max),
		MaxFPS:           fps(min),
		SpikeThresholdNS: spikeThreshold,
		SpikeCount:       spikes,
	}
}

// fps converts a frame duration in nanoseconds to frames per second.
func fps(durationNS int64) float64 {
	if durationNS <= 0 {
		return 0
	}
	return float64(time.Second.Nanoseconds()) / float64(durationNS)
}

// percentile returns the p-th percentile of an already-sorted ascending
// slice, indexing at ⌈p·(n-1)⌉, the same indexing the engine's native
// profiler uses.
func percentile(sorted []int64, p float64) int64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(math.Ceil(p * float64(n-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}
