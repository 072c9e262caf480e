package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// CalculateMetrics fills turnaround and waiting time. Every process must
// have completed; anything else is a scheduler bug.
func CalculateMetrics(processes []*core.Proccess) {
	for _, p := range processes {
		if p.Completion == core.NotCompleted {
			panic(fmt.Sprintf("schedulers: pid %d has no completion time", p.Pid))
		}
		p.Turnaround = p.Completion - p.Arrival
		p.Waiting = p.Turnaround - p.Burst
	}
}

func generateResponse(algorithm string, timeQuantum int, processes []*core.Proccess, timeline *core.Timeline) responses.ScheduleResponse {
	CalculateMetrics(processes)

	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	totalTime := timeline.Makespan()
	idleTime := timeline.IdleTime()
	var utilization, throughput float64
	if totalTime > 0 {
		utilization = float64(totalTime-idleTime) / float64(totalTime)
		throughput = float64(len(processes)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TimeQuantum:           timeQuantum,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		ContextSwitches:       timeline.ContextSwitches(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Timeline:              generateTimeline(timeline),
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.Pid,
		ArrivalTime:    process.Arrival,
		BurstTime:      process.Burst,
		CompletionTime: process.Completion,
		ResponseTime:   process.Start - process.Arrival,
		TurnAroundTime: process.Turnaround,
		WaitingTime:    process.Waiting,
	}
}

func generateTimeline(timeline *core.Timeline) []responses.SegmentResponse {
	segments := timeline.Segments()
	out := make([]responses.SegmentResponse, len(segments))
	for i, s := range segments {
		out[i] = responses.SegmentResponse{ProcessId: s.Pid, Idle: s.Idle, Start: s.Start, End: s.End}
	}
	return out
}
