// Package tui replays a finished schedule one simulated time unit at a time.
package tui

import (
	"fmt"
	"strings"
	"time"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

// Model steps a clock across the timelines of one or more results.
type Model struct {
	results  []responses.ScheduleResponse
	current  int
	clock    int
	playing  bool
	interval time.Duration
}

func NewModel(results []responses.ScheduleResponse, interval time.Duration) Model {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return Model{results: results, playing: true, interval: interval}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) end() int {
	if len(m.results) == 0 {
		return 0
	}
	return m.results[m.current].TotalTime
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.playing = !m.playing
			if m.playing && m.clock >= m.end() {
				m.clock = 0
			}
		case "right", "l":
			m.playing = false
			m.clock = min(m.clock+1, m.end())
		case "left", "h":
			m.playing = false
			m.clock = max(m.clock-1, 0)
		case "home", "g":
			m.clock = 0
		case "end", "G":
			m.clock = m.end()
		case "tab":
			if len(m.results) > 0 {
				m.current = (m.current + 1) % len(m.results)
				m.clock = min(m.clock, m.end())
			}
		}
		return m, nil
	case tickMsg:
		if m.playing {
			if m.clock < m.end() {
				m.clock++
			} else {
				m.playing = false
			}
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// runningAt returns the segment covering time t, if any.
func runningAt(response responses.ScheduleResponse, t int) (responses.SegmentResponse, bool) {
	for _, s := range response.Timeline {
		if s.Start <= t && t < s.End {
			return s, true
		}
	}
	return responses.SegmentResponse{}, false
}

// remainingAt computes how much work each process still has at time t.
func remainingAt(response responses.ScheduleResponse, t int) map[int]int {
	remaining := make(map[int]int, len(response.Details))
	for _, d := range response.Details {
		remaining[d.ProcessId] += d.BurstTime
	}
	for _, s := range response.Timeline {
		if s.Idle || s.Start >= t {
			continue
		}
		remaining[s.ProcessId] -= min(s.End, t) - s.Start
	}
	return remaining
}

func (m Model) View() string {
	if len(m.results) == 0 {
		return "nothing to replay\n"
	}
	response := m.results[m.current]

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(report.Title(response)))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  t=%d/%d", m.clock, response.TotalTime)))
	sb.WriteString("\n\n")

	if m.clock >= response.TotalTime {
		sb.WriteString(runningStyle.Render("done"))
	} else if s, ok := runningAt(response, m.clock); ok {
		sb.WriteString("running: " + runningStyle.Render(report.Owner(s)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(report.GanttUntil(response, m.clock))
	sb.WriteString("\n\n")

	remaining := remainingAt(response, m.clock)
	seen := make(map[int]bool, len(response.Details))
	for _, d := range response.Details {
		if seen[d.ProcessId] {
			continue
		}
		seen[d.ProcessId] = true
		state := "waiting"
		switch {
		case d.ArrivalTime > m.clock:
			state = "not arrived"
		case remaining[d.ProcessId] == 0:
			state = "finished"
		}
		sb.WriteString(fmt.Sprintf("P%-4d remaining %-4d %s\n", d.ProcessId, remaining[d.ProcessId], dimStyle.Render(state)))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space play/pause  ←/→ step  tab next algorithm  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run blocks until the user quits the replay.
func Run(results []responses.ScheduleResponse, interval time.Duration) error {
	_, err := tea.NewProgram(NewModel(results, interval)).Run()
	return err
}
