package tui

import (
	"testing"
	"time"

	"cpu-scheduler/internal/responses"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func sample() []responses.ScheduleResponse {
	return []responses.ScheduleResponse{{
		Algorithm: "Preemptive SJF (SRTF)",
		TotalTime: 8,
		Timeline: []responses.SegmentResponse{
			{ProcessId: 1, Start: 0, End: 1},
			{ProcessId: 2, Start: 1, End: 4},
			{ProcessId: 1, Start: 4, End: 8},
		},
		Details: []responses.ProcessResponse{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
		},
	}}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TicksAdvanceClockUntilEnd(t *testing.T) {
	m := NewModel(sample(), time.Millisecond)
	assert.True(t, m.playing)

	for i := 0; i < 20; i++ {
		m = update(m, tickMsg(time.Now()))
	}
	assert.Equal(t, 8, m.clock)
	assert.False(t, m.playing)
}

func TestModel_StepKeys(t *testing.T) {
	m := NewModel(sample(), time.Millisecond)

	m = update(m, key("right"))
	assert.False(t, m.playing, "stepping pauses playback")
	assert.Equal(t, 1, m.clock)

	m = update(m, key("left"))
	m = update(m, key("left"))
	assert.Equal(t, 0, m.clock)

	m = update(m, key("G"))
	assert.Equal(t, 8, m.clock)
	m = update(m, key("right"))
	assert.Equal(t, 8, m.clock)

	m = update(m, key(" "))
	assert.True(t, m.playing)
	assert.Equal(t, 0, m.clock, "playing from the end restarts")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(sample(), time.Millisecond)
	_, cmd := m.Update(key("q"))
	if assert.NotNil(t, cmd) {
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(sample(), time.Millisecond)
	m = update(m, key("right"))
	m = update(m, key("right"))

	view := m.View()
	assert.Contains(t, view, "t=2/8")
	assert.Contains(t, view, "running: ")
	assert.Contains(t, view, "P2")
}

func TestRemainingAt(t *testing.T) {
	remaining := remainingAt(sample()[0], 2)
	assert.Equal(t, 4, remaining[1])
	assert.Equal(t, 2, remaining[2])

	remaining = remainingAt(sample()[0], 8)
	assert.Equal(t, 0, remaining[1])
	assert.Equal(t, 0, remaining[2])
}

func TestModel_EmptyResults(t *testing.T) {
	m := NewModel(nil, 0)
	assert.Equal(t, "nothing to replay\n", m.View())
	m = update(m, key("tab"))
	assert.Equal(t, 0, m.current)
}
