package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProccess_Execute(t *testing.T) {
	p := NewProccess(3, 1, 4)
	require.Equal(t, NotStarted, p.Start)
	require.Equal(t, NotCompleted, p.Completion)

	assert.Equal(t, 3, p.Execute(2, 1))
	assert.Equal(t, 2, p.Start)
	assert.Equal(t, 3, p.Remaining)
	assert.False(t, p.Done())

	assert.Equal(t, 9, p.Execute(6, 3))
	assert.True(t, p.Done())
	assert.Equal(t, 9, p.Completion)
	assert.Equal(t, 2, p.Start, "start keeps the first dispatch")
}

func TestProccess_ExecutePastRemainingPanics(t *testing.T) {
	p := NewProccess(1, 0, 2)
	assert.Panics(t, func() { p.Execute(0, 3) })
	assert.Panics(t, func() { p.Execute(0, 0) })

	p.Execute(0, 2)
	assert.Panics(t, func() { p.Execute(2, 1) })
}

func TestAllDone(t *testing.T) {
	a, b := NewProccess(1, 0, 1), NewProccess(2, 0, 1)
	processes := []*Proccess{a, b}
	assert.False(t, AllDone(processes))
	a.Execute(0, 1)
	assert.False(t, AllDone(processes))
	b.Execute(1, 1)
	assert.True(t, AllDone(processes))
}
