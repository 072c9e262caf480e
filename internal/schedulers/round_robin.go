package schedulers

import (
	"fmt"
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/workload"
)

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	if err := workload.ValidateQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	processes, err := workload.Load(request.Jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	timeline := RunRoundRobin(processes, timeQuantum)

	response := generateResponse(RoundRobinName, timeQuantum, processes, timeline)
	log.Printf("response is: %+v", response)
	return response, nil
}

// RunRoundRobin simulates round robin with a fixed time quantum over a FIFO
// ready queue. Processes arriving while a slice runs are queued ahead of
// the preempted process.
func RunRoundRobin(processes []*core.Proccess, timeQuantum int) *core.Timeline {
	return runRoundRobin(processes, timeQuantum, nil)
}

// dispatch describes one slice handed to a process.
type dispatch struct {
	index int
	start int
	end   int
	// queued is the ready queue right after the slice, before requeueing.
	queued []int
}

func runRoundRobin(processes []*core.Proccess, timeQuantum int, onDispatch func(dispatch)) *core.Timeline {
	if timeQuantum <= 0 {
		panic(fmt.Sprintf("schedulers: time quantum %d is not positive", timeQuantum))
	}
	timeline := core.NewTimeline()
	if len(processes) == 0 {
		return timeline
	}

	readyQueue := core.NewReadyQueue(len(processes))
	order := arrivalOrder(processes)
	pending := 0
	enqueueArrived := func(t int) {
		for ; pending < len(order) && processes[order[pending]].Arrival <= t; pending++ {
			p := processes[order[pending]]
			if p.Enqueued {
				panic(fmt.Sprintf("schedulers: pid %d queued twice", p.Pid))
			}
			p.Enqueued = true
			readyQueue.Push(order[pending])
		}
	}

	t := processes[order[0]].Arrival
	timeline.AddIdle(0, t)
	enqueueArrived(t)

	for !core.AllDone(processes) {
		if readyQueue.Empty() {
			if pending == len(order) {
				panic(fmt.Sprintf("schedulers: ready queue drained with unfinished processes at t=%d", t))
			}
			arrival := processes[order[pending]].Arrival
			timeline.AddIdle(t, arrival)
			t = arrival
			enqueueArrived(t)
			continue
		}

		index, _ := readyQueue.Pop()
		p := processes[index]
		slice := min(p.Remaining, timeQuantum)
		start := t
		for unit := 0; unit < slice; unit++ {
			t = p.Execute(t, 1)
			enqueueArrived(t)
		}
		timeline.AddSegment(p.Pid, start, t)
		log.Println("pid:", p.Pid, "ran from", start, "to", t, "remaining", p.Remaining)

		if onDispatch != nil {
			onDispatch(dispatch{index: index, start: start, end: t, queued: readyQueue.Items()})
		}
		if !p.Done() {
			readyQueue.Push(index)
		}
	}
	return timeline
}

// arrivalOrder returns process indices by arrival time, input order
// breaking ties.
func arrivalOrder(processes []*core.Proccess) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].Arrival < processes[order[j]].Arrival
	})
	return order
}
