package workload

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"
)

// ReadCSV reads "pid,arrival,burst" rows. Blank lines and lines starting
// with '#' are skipped, as is a leading "pid,arrival,burst" header row.
func ReadCSV(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformedDefinition, err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		job, err := parseJob(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

var csvHeader = [3]string{"pid", "arrival", "burst"}

func isHeader(row []string) bool {
	for i, field := range row {
		if !strings.EqualFold(strings.TrimSpace(field), csvHeader[i]) {
			return false
		}
	}
	return true
}

// ReadText reads the whitespace separated format:
//
//	n
//	[quantum]            only when withQuantum is set
//	pid arrival burst    n times
func ReadText(r io.Reader, withQuantum bool) (jobs []requests.Job, timeQuantum int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedDefinition, what)
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedDefinition, what, scanner.Text())
		}
		return v, nil
	}

	n, err := next("process count")
	if err != nil {
		return nil, 0, err
	}
	if n <= 0 {
		return nil, 0, ErrEmptyWorkload
	}
	if withQuantum {
		if timeQuantum, err = next("time quantum"); err != nil {
			return nil, 0, err
		}
		if err := ValidateQuantum(timeQuantum); err != nil {
			return nil, 0, err
		}
	}

	jobs = make([]requests.Job, 0, n)
	for i := 0; i < n; i++ {
		var fields [3]int
		for f, what := range []string{"pid", "arrival", "burst"} {
			if fields[f], err = next(fmt.Sprintf("%s of process %d", what, i+1)); err != nil {
				return nil, 0, err
			}
		}
		jobs = append(jobs, requests.Job{ProcessId: fields[0], ArrivalTime: fields[1], BurstTime: fields[2]})
	}
	return jobs, timeQuantum, nil
}

func parseJob(row []string) (requests.Job, error) {
	var fields [3]int
	for i, raw := range row {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return requests.Job{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedDefinition, raw)
		}
		fields[i] = v
	}
	return requests.Job{ProcessId: fields[0], ArrivalTime: fields[1], BurstTime: fields[2]}, nil
}
