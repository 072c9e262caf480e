package report

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/responses"
	"github.com/charmbracelet/lipgloss"
)

var (
	palette = []lipgloss.Color{"39", "208", "42", "170", "220", "81", "203", "147"}

	idleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// maxCellWidth caps how wide a single segment is drawn.
const maxCellWidth = 12

func segmentStyle(s responses.SegmentResponse) lipgloss.Style {
	if s.Idle {
		return idleStyle
	}
	i := s.ProcessId % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(palette[i])
}

func cellWidth(s responses.SegmentResponse) int {
	width := max(s.End-s.Start, len(Owner(s))+2)
	return min(width, max(maxCellWidth, len(Owner(s))+2))
}

// Gantt draws the timeline as a row of colored blocks with the segment
// boundaries printed underneath:
//
//	| P1 |   P2   |      P1      |
//	0    1        4              8
func Gantt(response responses.ScheduleResponse) string {
	return GanttUntil(response, response.TotalTime)
}

// GanttUntil draws the timeline cut off at clock.
func GanttUntil(response responses.ScheduleResponse, clock int) string {
	var bar, axis strings.Builder
	bar.WriteString(axisStyle.Render("|"))
	axis.WriteString("0")
	barPos, axisLen := 0, 1

	for _, s := range response.Timeline {
		if s.Start >= clock {
			break
		}
		visible := s
		visible.End = min(s.End, clock)

		width := cellWidth(visible)
		label := Owner(visible)
		pad := width - len(label)
		cell := strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
		bar.WriteString(segmentStyle(visible).Render(cell))
		bar.WriteString(axisStyle.Render("|"))

		// the boundary label starts under the closing bar of the cell
		barPos += width + 1
		end := fmt.Sprint(visible.End)
		gap := max(barPos-axisLen, 1)
		axis.WriteString(strings.Repeat(" ", gap))
		axis.WriteString(end)
		axisLen += gap + len(end)
	}

	return labelStyle.Render(Title(response)) + "\n" + bar.String() + "\n" + axisStyle.Render(axis.String())
}
