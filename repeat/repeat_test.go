package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/constant"
	"pipelined.dev/patchbay/gain"
	"pipelined.dev/patchbay/mock"
	"pipelined.dev/patchbay/repeat"
)

func TestRepeater(t *testing.T) {
	g := patchbay.New()
	src := g.AddNode(constant.New(4, 1))
	r := g.AddNode(repeat.New(3))
	amp := g.AddNode(gain.New(3))
	sinks := []*mock.Node{
		{Inputs: 1},
		{Inputs: 1},
		{Inputs: 1},
	}
	require.NoError(t, g.Patch(src, 0, r, 0))
	require.NoError(t, g.Patch(r, 0, amp, 0))
	for i, s := range sinks {
		id := g.AddNode(s)
		if i == 0 {
			require.NoError(t, g.Patch(amp, 0, id, 0))
			continue
		}
		require.NoError(t, g.Patch(r, patchbay.OutputID(i), id, 0))
	}

	require.NoError(t, g.Pass())
	assert.Equal(t, []float64{3, 3, 3, 3}, sinks[0].Received(0))
	assert.Equal(t, []float64{1, 1, 1, 1}, sinks[1].Received(0))
	assert.Equal(t, []float64{1, 1, 1, 1}, sinks[2].Received(0))
}

func TestRepeaterChannels(t *testing.T) {
	r := repeat.New(2)
	assert.Equal(t, 1, r.NumInputs())
	assert.Equal(t, 2, r.NumOutputs())
	assert.NotNil(t, r.Input(0))
	assert.Nil(t, r.Input(1))
	assert.NotNil(t, r.Output(1))
	assert.Nil(t, r.Output(2))
	assert.Nil(t, r.Output(-1))
	assert.Equal(t, 0, repeat.New(-1).NumOutputs())
}

func TestRepeaterCopies(t *testing.T) {
	r := repeat.New(2)
	copy(r.Input(0).Input(2), []float64{1, 2})
	require.NoError(t, r.Run())

	first := make([]float64, 2)
	assert.Equal(t, 2, r.Output(0).Output(first))
	first[0] = 10
	second := make([]float64, 2)
	assert.Equal(t, 2, r.Output(1).Output(second))
	assert.Equal(t, []float64{1, 2}, second)
}
