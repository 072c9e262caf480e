package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/tui"
	"cpu-scheduler/internal/workload"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	configPath  string
	inputPath   string
	format      string
	algorithm   string
	timeQuantum int
	replay      bool
}

func runCLI(w io.Writer, opts options, cfg *config.SchedulerConfig) error {
	f, err := os.Open(opts.inputPath)
	if err != nil {
		return fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	request, fileQuantum, err := readWorkload(f, opts.format, opts.algorithm)
	if err != nil {
		return err
	}

	// flag beats the file, the file beats the config
	timeQuantum := cfg.RoundRobinTimeQuantum
	if fileQuantum > 0 {
		timeQuantum = fileQuantum
	}
	if opts.timeQuantum != 0 {
		timeQuantum = opts.timeQuantum
	}

	results, err := schedulers.Schedule(opts.algorithm, request, timeQuantum)
	if err != nil {
		return err
	}

	if opts.replay {
		return tui.Run(results, time.Duration(cfg.ReplayTickMillis)*time.Millisecond)
	}
	report.Write(w, results)
	return nil
}

// readWorkload parses r. Text input has a quantum line only for round robin.
func readWorkload(r io.Reader, format, algorithm string) (*requests.ScheduleRequests, int, error) {
	switch format {
	case "csv":
		jobs, err := workload.ReadCSV(r)
		if err != nil {
			return nil, 0, err
		}
		return &requests.ScheduleRequests{Jobs: jobs}, 0, nil
	case "text":
		jobs, timeQuantum, err := workload.ReadText(r, algorithm == schedulers.AlgorithmRR)
		if err != nil {
			return nil, 0, err
		}
		return &requests.ScheduleRequests{Jobs: jobs, TimeQuantum: timeQuantum}, timeQuantum, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown format %q", ErrInvalidArgs, format)
	}
}
