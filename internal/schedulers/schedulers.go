package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/workload"
)

const (
	ShortestRemainingTimeFirstName = "Preemptive SJF (SRTF)"
	RoundRobinName                 = "Round Robin"
)

// Algorithm selectors accepted by Schedule.
const (
	AlgorithmSRTF = "srtf"
	AlgorithmRR   = "rr"
	AlgorithmAll  = "all"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Schedule runs the selected algorithm, or both of them for AlgorithmAll.
// timeQuantum is only consulted by round robin.
func Schedule(algorithm string, request *requests.ScheduleRequests, timeQuantum int) ([]responses.ScheduleResponse, error) {
	switch algorithm {
	case AlgorithmSRTF:
		response, err := ScheduleShortestRemainingTimeFirst(request)
		if err != nil {
			return nil, err
		}
		return []responses.ScheduleResponse{response}, nil
	case AlgorithmRR:
		response, err := ScheduleRoundRobin(request, timeQuantum)
		if err != nil {
			return nil, err
		}
		return []responses.ScheduleResponse{response}, nil
	case AlgorithmAll:
		if err := workload.ValidateQuantum(timeQuantum); err != nil {
			return nil, err
		}
		srtf, err := ScheduleShortestRemainingTimeFirst(request)
		if err != nil {
			return nil, err
		}
		rr, err := ScheduleRoundRobin(request, timeQuantum)
		if err != nil {
			return nil, err
		}
		return []responses.ScheduleResponse{srtf, rr}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
