// Package workload validates scheduling input and turns it into the
// process table the schedulers mutate.
package workload

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// ErrInvalidInput is wrapped by every validation error.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyWorkload       = fmt.Errorf("%w: empty workload", ErrInvalidInput)
	ErrNegativeArrival     = fmt.Errorf("%w: arrival must be >= 0", ErrInvalidInput)
	ErrNonPositiveBurst    = fmt.Errorf("%w: burst must be > 0", ErrInvalidInput)
	ErrNonPositiveQuantum  = fmt.Errorf("%w: time quantum must be > 0", ErrInvalidInput)
	ErrMalformedDefinition = fmt.Errorf("%w: malformed workload definition", ErrInvalidInput)
	ErrWorkloadTooLarge    = fmt.Errorf("%w: workload too large", ErrInvalidInput)
)

// MaxTime bounds every arrival and the summed burst of a workload.
// Round robin advances one time unit at a time.
const MaxTime = 1_000_000

// Validate checks every job before anything is simulated.
func Validate(jobs []requests.Job) error {
	if len(jobs) == 0 {
		return ErrEmptyWorkload
	}
	total := 0
	for i, job := range jobs {
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: job %d (pid %d) arrives at %d", ErrNegativeArrival, i, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: job %d (pid %d) has burst %d", ErrNonPositiveBurst, i, job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime > MaxTime || job.BurstTime > MaxTime-total {
			return fmt.Errorf("%w: arrivals and total burst must stay within %d", ErrWorkloadTooLarge, MaxTime)
		}
		total += job.BurstTime
	}
	return nil
}

func ValidateQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveQuantum, timeQuantum)
	}
	return nil
}

// Load validates jobs and builds a fresh process table in input order.
func Load(jobs []requests.Job) ([]*core.Proccess, error) {
	if err := Validate(jobs); err != nil {
		return nil, err
	}
	processes := make([]*core.Proccess, len(jobs))
	for i, job := range jobs {
		processes[i] = core.NewProccess(job.ProcessId, job.ArrivalTime, job.BurstTime)
	}
	return processes, nil
}
