package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeDetectorRisingEdgesOnly(t *testing.T) {
	var d EdgeDetector

	samples := []struct {
		levels   Input
		expected Input
	}{
		{Input{}, Input{}},
		{Input{Left: true}, Input{Left: true}},
		{Input{Left: true}, Input{}},                          // held
		{Input{Left: true, Rotate: true}, Input{Rotate: true}}, // second control pressed
		{Input{}, Input{}},                                     // released
		{Input{Left: true, Right: true}, Input{Left: true, Right: true}},
	}

	for i, s := range samples {
		assert.Equal(t, s.expected, d.Edges(s.levels), "sample %d", i)
	}
}

func TestEdgeDetectorReset(t *testing.T) {
	var d EdgeDetector
	d.Edges(Input{Rotate: true})

	assert.False(t, d.Edges(Input{Rotate: true}).Rotate)
	d.Reset()
	assert.True(t, d.Edges(Input{Rotate: true}).Rotate, "held control fires again after reset")
}
