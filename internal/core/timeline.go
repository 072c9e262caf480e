package core

import "fmt"

// Segment is a contiguous stretch of simulated time [Start, End) owned by
// a process or, when Idle is set, by nobody.
type Segment struct {
	Pid   int
	Idle  bool
	Start int
	End   int
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

func (s Segment) sameOwner(other Segment) bool {
	if s.Idle || other.Idle {
		return s.Idle == other.Idle
	}
	return s.Pid == other.Pid
}

// Timeline collects segments in time order and merges touching segments
// of the same owner.
type Timeline struct {
	segments []Segment
}

func NewTimeline() *Timeline {
	return &Timeline{segments: make([]Segment, 0, 16)}
}

func (t *Timeline) AddSegment(pid, start, end int) {
	t.add(Segment{Pid: pid, Start: start, End: end})
}

func (t *Timeline) AddIdle(start, end int) {
	t.add(Segment{Idle: true, Start: start, End: end})
}

func (t *Timeline) add(segment Segment) {
	if segment.Start > segment.End {
		panic(fmt.Sprintf("core: segment [%d, %d) ends before it starts", segment.Start, segment.End))
	}
	if segment.Start == segment.End {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.sameOwner(segment) && last.End == segment.Start {
			last.End = segment.End
			return
		}
	}
	t.segments = append(t.segments, segment)
}

// Segments returns a copy of the merged segments.
func (t *Timeline) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Makespan is the end of the last segment.
func (t *Timeline) Makespan() int {
	if len(t.segments) == 0 {
		return 0
	}
	return t.segments[len(t.segments)-1].End
}

// IdleTime sums the duration of all idle segments.
func (t *Timeline) IdleTime() int {
	idle := 0
	for _, s := range t.segments {
		if s.Idle {
			idle += s.Duration()
		}
	}
	return idle
}

// ContextSwitches counts how often the cpu moves from one process to a
// different one. Idle gaps are skipped.
func (t *Timeline) ContextSwitches() int {
	switches := 0
	var prev *Segment
	for i := range t.segments {
		s := &t.segments[i]
		if s.Idle {
			continue
		}
		if prev != nil && prev.Pid != s.Pid {
			switches++
		}
		prev = s
	}
	return switches
}
