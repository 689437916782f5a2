package profiler

import "time"

// Zone is a named interval within a frame, bracketed by BeginZone/EndZone.
// ID is the zone's index within the current frame's zone vector; ParentID
// is the ID of the zone open when this one began, or -1 if none was.
type Zone struct {
	ID          uint64
	Name        string
	File        string
	Line        int
	TotalTimeNS int64
	SelfTimeNS  int64
	CallCount   int
	ParentID    int64
}

// BeginZone opens a new zone within the current frame and returns its id,
// which EndZone later consumes. If the profiler has not been initialized,
// BeginZone returns 0 without recording anything, so tick liveness survives
// a disabled profiler.
func BeginZone(name, file string, line int) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return 0
	}

	id := uint64(len(p.zones))
	parentID := int64(-1)
	if n := len(p.openZones); n > 0 {
		parentID = int64(p.openZones[n-1])
	}

	p.zones = append(p.zones, Zone{ID: id, Name: name, File: file, Line: line, ParentID: parentID})
	p.zoneStarts = append(p.zoneStarts, time.Now())
	p.openZones = append(p.openZones, id)
	return id
}

// EndZone closes the zone identified by id, setting its total and self time
// from the elapsed duration since BeginZone. It is a no-op if id is out of
// range for the current frame, including id 0 when the profiler is
// uninitialized (BeginZone never allocated a zone 0 to close).
func EndZone(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || id >= uint64(len(p.zones)) {
		return
	}

	elapsed := time.Since(p.zoneStarts[id])
	p.zones[id].TotalTimeNS = int64(elapsed)
	p.zones[id].SelfTimeNS = p.zones[id].TotalTimeNS
	p.zones[id].CallCount++

	if n := len(p.openZones); n > 0 && p.openZones[n-1] == id {
		p.openZones = p.openZones[:n-1]
	}
}

// GetZones returns a copy of the current frame's zone vector, as recorded
// since the last BeginFrame.
func GetZones() []Zone {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Zone, len(p.zones))
	copy(out, p.zones)
	return out
}
