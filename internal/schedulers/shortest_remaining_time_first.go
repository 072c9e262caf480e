package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/workload"
)

func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")
	processes, err := workload.Load(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline := RunShortestRemainingTimeFirst(processes)

	response := generateResponse(ShortestRemainingTimeFirstName, 0, processes, timeline)
	log.Printf("response is: %+v", response)
	return response, nil
}

// RunShortestRemainingTimeFirst simulates preemptive SJF. At every time
// unit the arrived, unfinished process with the least remaining time runs;
// ties go to the earlier arrival, then to the smaller pid.
func RunShortestRemainingTimeFirst(processes []*core.Proccess) *core.Timeline {
	timeline := core.NewTimeline()
	t := 0
	for !core.AllDone(processes) {
		shortest := pickShortestRemaining(processes, t)
		if shortest == nil {
			next, ok := nextArrival(processes, t)
			if !ok {
				panic(fmt.Sprintf("schedulers: nothing runnable and nothing pending at t=%d", t))
			}
			timeline.AddIdle(t, next)
			t = next
			continue
		}

		// The running process only gets shorter, so the choice holds until
		// it finishes or somebody new arrives.
		units := shortest.Remaining
		if next, ok := nextArrival(processes, t); ok && next-t < units {
			units = next - t
		}
		timeline.AddSegment(shortest.Pid, t, t+units)
		t = shortest.Execute(t, units)
	}
	return timeline
}

func pickShortestRemaining(processes []*core.Proccess, t int) *core.Proccess {
	var shortest *core.Proccess
	for _, p := range processes {
		if p.Arrival > t || p.Done() {
			continue
		}
		if shortest == nil || runsBefore(p, shortest) {
			shortest = p
		}
	}
	return shortest
}

// runsBefore reports whether a beats b. Fully equal candidates keep input
// order because the caller only replaces on a strict win.
func runsBefore(a, b *core.Proccess) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Pid < b.Pid
}

// nextArrival returns the earliest arrival strictly after t.
func nextArrival(processes []*core.Proccess, t int) (int, bool) {
	next, found := 0, false
	for _, p := range processes {
		if p.Done() || p.Arrival <= t {
			continue
		}
		if !found || p.Arrival < next {
			next, found = p.Arrival, true
		}
	}
	return next, found
}
