// Package profiler records per-frame timing history and derives percentile
// statistics and spike detection from it, tracks per-zone timings within a
// frame, and exposes allocation counters and an optional CPU profile
// capture hook. It is a guarded, process-wide singleton: Init/Shutdown
// bracket its lifetime, and BeginFrame, EndFrame, BeginZone and EndZone are
// no-ops before Init or after Shutdown, so a disabled profiler never
// threatens tick liveness. The allocation counters, the read accessors and
// the CPU profile hooks do not check initialization.
package profiler

import (
	"sync"
	"time"

	"github.com/pkg/profile"
)

type state struct {
	mu sync.Mutex

	initialized bool
	historySize int
	history     []FrameStats
	frameNumber uint64

	frameOpen  bool
	frameStart time.Time
	inFlight   FrameStats
	completed  FrameStats

	zones      []Zone
	zoneStarts []time.Time
	openZones  []uint64

	cpu interface{ Stop() }
}

var p = &state{historySize: 120}

// Init (re)configures the profiler with a fixed-size rolling frame history
// and marks it initialized. It discards any history recorded so far.
func Init(historySize int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if historySize <= 0 {
		historySize = 1
	}
	p.initialized = true
	p.historySize = historySize
	p.history = p.history[:0]
	p.frameNumber = 0
	p.frameOpen = false
	p.inFlight = FrameStats{}
	p.completed = FrameStats{}
	p.zones = nil
	p.zoneStarts = nil
	p.openZones = nil
}

// Shutdown stops any in-flight CPU profile capture, clears history, and
// marks the profiler uninitialized: frame and zone calls are no-ops until
// the next Init.
func Shutdown() {
	stopCPUProfile()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialized = false
	p.history = p.history[:0]
}

// BeginFrame marks the start of a new frame: it snapshots a timestamp,
// resets the in-flight FrameStats and zone buffers, and stamps the frame
// number. It is a no-op if the profiler is uninitialized or a frame is
// already open.
func BeginFrame() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.frameOpen {
		return
	}
	p.frameOpen = true
	p.frameStart = time.Now()
	p.inFlight = FrameStats{FrameNumber: p.frameNumber}
	p.zones = p.zones[:0]
	p.zoneStarts = p.zoneStarts[:0]
	p.openZones = p.openZones[:0]
}

// EndFrame closes the currently open frame: computes its total time,
// appends it to history (evicting the oldest sample once history exceeds
// its configured size), and advances the frame counter. It is a no-op if
// the profiler is uninitialized or no frame is open.
func EndFrame() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || !p.frameOpen {
		return
	}

	p.inFlight.TotalTimeNS = int64(time.Since(p.frameStart))
	p.frameOpen = false
	p.completed = p.inFlight
	p.frameNumber++

	p.history = append(p.history, p.completed)
	if over := len(p.history) - p.historySize; over > 0 {
		p.history = p.history[over:]
	}
}

// SetEntityCount stamps the in-flight frame's entity count. It is a no-op
// if no frame is currently open.
func SetEntityCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frameOpen {
		p.inFlight.EntityCount = n
	}
}

// SetSystemCount stamps the in-flight frame's system count. It is a no-op
// if no frame is currently open.
func SetSystemCount(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frameOpen {
		p.inFlight.SystemCount = n
	}
}

// RecordUpdateTime stamps the in-flight frame's update-phase duration. It is
// a no-op if no frame is currently open.
func RecordUpdateTime(ns int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frameOpen {
		p.inFlight.UpdateTimeNS = ns
	}
}

// RecordRenderTime stamps the in-flight frame's render-phase duration. It is
// a no-op if no frame is currently open; render timing is driven by
// whatever system performs presentation, since rendering itself is outside
// this package.
func RecordRenderTime(ns int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frameOpen {
		p.inFlight.RenderTimeNS = ns
	}
}

// RecordAllocation adds bytes to the in-flight frame's memory counter and
// increments its allocation count.
func RecordAllocation(bytes uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight.MemoryUsed += int64(bytes)
	p.inFlight.AllocationCount++
}

// RecordDeallocation subtracts bytes from the in-flight frame's memory
// counter, saturating at zero, and increments its deallocation count.
func RecordDeallocation(bytes uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight.MemoryUsed -= int64(bytes)
	if p.inFlight.MemoryUsed < 0 {
		p.inFlight.MemoryUsed = 0
	}
	p.inFlight.DeallocationCount++
}

// CurrentFrame returns the most recently completed frame's stats.
func CurrentFrame() FrameStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// FrameHistory returns a copy of every recorded frame, oldest first, up to
// the configured history size.
func FrameHistory() []FrameStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]FrameStats, len(p.history))
	copy(out, p.history)
	return out
}

// ProfilerStats computes Stats over the current frame history.
func ProfilerStats() Stats {
	p.mu.Lock()
	frames := make([]FrameStats, len(p.history))
	copy(frames, p.history)
	p.mu.Unlock()
	return computeStats(frames)
}

// ResetStats discards all recorded frame history without changing the
// configured history size or initialized state.
func ResetStats() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = p.history[:0]
	p.completed = FrameStats{}
}

// StartCPUProfile begins writing a pprof CPU profile to path. Calling it
// while a capture is already running is a no-op.
func StartCPUProfile(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cpu != nil {
		return
	}
	p.cpu = profile.Start(profile.CPUProfile, profile.ProfilePath(path), profile.NoShutdownHook)
}

// StopCPUProfile ends an in-flight CPU profile capture started by
// StartCPUProfile. It is a no-op if no capture is running.
func StopCPUProfile() {
	stopCPUProfile()
}

func stopCPUProfile() {
	p.mu.Lock()
	cpu := p.cpu
	p.cpu = nil
	p.mu.Unlock()
	if cpu != nil {
		cpu.Stop()
	}
}
