package core

import "fmt"

const (
	// NotCompleted marks a process whose remaining time has not reached zero yet.
	NotCompleted = -1
	// NotStarted marks a process that was never dispatched.
	NotStarted = -1
)

// Proccess is one workload item together with its scheduling state.
// Remaining only ever decreases and Completion is written exactly once.
type Proccess struct {
	Pid        int
	Arrival    int
	Burst      int
	Remaining  int
	Start      int
	Completion int
	Waiting    int
	Turnaround int

	// Enqueued is used by round robin only.
	Enqueued bool
}

func NewProccess(pid, arrival, burst int) *Proccess {
	return &Proccess{
		Pid:        pid,
		Arrival:    arrival,
		Burst:      burst,
		Remaining:  burst,
		Start:      NotStarted,
		Completion: NotCompleted,
	}
}

// Done reports whether nothing remains to run.
func (p *Proccess) Done() bool {
	return p.Remaining == 0
}

// Execute runs the process for units time units beginning at now and
// returns the time at which the run ends.
func (p *Proccess) Execute(now, units int) int {
	if units <= 0 || units > p.Remaining {
		panic(fmt.Sprintf("core: pid %d cannot run %d units with %d remaining", p.Pid, units, p.Remaining))
	}
	if p.Start == NotStarted {
		p.Start = now
	}
	p.Remaining -= units
	end := now + units
	if p.Remaining == 0 {
		p.Completion = end
	}
	return end
}

// AllDone reports whether every process finished.
func AllDone(processes []*Proccess) bool {
	for _, p := range processes {
		if !p.Done() {
			return false
		}
	}
	return true
}
