// Package report renders schedule responses as text for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"
	"github.com/olekukonko/tablewriter"
)

// Title is the heading used for a response, e.g. "Round Robin (q=2)".
func Title(response responses.ScheduleResponse) string {
	if response.TimeQuantum > 0 {
		return fmt.Sprintf("%s (q=%d)", response.Algorithm, response.TimeQuantum)
	}
	return response.Algorithm
}

// WriteExecutionOrder prints one "[start - end] owner" line per segment.
func WriteExecutionOrder(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "\n=== %s Execution Order ===\n", Title(response))
	for _, s := range response.Timeline {
		_, _ = fmt.Fprintf(w, "[%d - %d] %s\n", s.Start, s.End, Owner(s))
	}
}

// Owner is the printable owner of a segment.
func Owner(s responses.SegmentResponse) string {
	if s.Idle {
		return "IDLE"
	}
	return fmt.Sprintf("P%d", s.ProcessId)
}

// WriteResults prints the per-process table and the averages.
func WriteResults(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "\n=== Results ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrive", "Burst", "Wait", "Turnaround"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, d := range response.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	table.Render()

	_, _ = fmt.Fprintf(w, "\nAverage waiting time: %.2f\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average turnaround time: %.2f\n", response.AverageTurnAroundTime)
}

// WriteSummary compares several runs of the same workload.
func WriteSummary(w io.Writer, results []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "\n=== Comparison ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Switches", "Utilization"})
	for _, r := range results {
		table.Append([]string{
			Title(r),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}

// Write renders every response followed by a comparison when there is
// more than one.
func Write(w io.Writer, results []responses.ScheduleResponse) {
	for _, r := range results {
		WriteExecutionOrder(w, r)
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, Gantt(r))
		WriteResults(w, r)
	}
	if len(results) > 1 {
		WriteSummary(w, results)
	}
	_, _ = fmt.Fprint(w, strings.Repeat("-", 50), "\n")
}
