package main

import (
	"testing"

	"github.com/milk9111/spookymaze/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRunsOnDarkOnce(t *testing.T) {
	var got []system.Outcome
	tr := NewTransition(func(o system.Outcome) { got = append(got, o) })
	tr.Duration = 4

	assert.False(t, tr.Update(), "idle transition does not freeze the world")

	tr.Start(system.Cleared)
	tr.Start(system.Caught)
	require.True(t, tr.Active())

	for range 3 {
		require.True(t, tr.Update())
	}
	assert.Empty(t, got)
	assert.InDelta(t, 0.75, tr.Alpha(), 1e-9)

	require.True(t, tr.Update())
	assert.Equal(t, []system.Outcome{system.Cleared}, got)
	assert.InDelta(t, 1.0, tr.Alpha(), 1e-9)

	for range 4 {
		require.True(t, tr.Update())
	}
	assert.False(t, tr.Active())
	assert.Zero(t, tr.Alpha())
	assert.Len(t, got, 1)
}
