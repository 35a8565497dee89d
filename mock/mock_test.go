package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/mock"
)

var (
	_ patchbay.Node    = (*mock.Node)(nil)
	_ patchbay.Flusher = (*mock.Node)(nil)
)

func TestNode(t *testing.T) {
	r := &mock.Recorder{}
	m := &mock.Node{
		Name:     "sum",
		Inputs:   2,
		Outputs:  1,
		Count:    3,
		Value:    1,
		Recorder: r,
	}
	copy(m.Input(0).Input(3), []float64{1, 2, 3})
	copy(m.Input(1).Input(2), []float64{10, 20})
	require.NoError(t, m.Run())

	dst := make([]float64, 3)
	assert.Equal(t, 3, m.Output(0).Output(dst))
	assert.Equal(t, []float64{12, 23, 4}, dst)
	assert.Equal(t, []float64{10, 20}, m.Received(1))
	assert.Equal(t, 1, m.Counter.Runs)
	assert.Equal(t, 5, m.Counter.Samples)
	assert.Equal(t, []string{"sum"}, r.Runs)

	m.ValueParam(0)()
	require.NoError(t, m.Run())
	assert.Equal(t, 3, m.Output(0).Output(dst))
	assert.Equal(t, []float64{11, 22, 3}, dst)
}

func TestOutOfRange(t *testing.T) {
	m := &mock.Node{Inputs: 1, Outputs: 1}
	assert.Nil(t, m.Input(1))
	assert.Nil(t, m.Input(-1))
	assert.Nil(t, m.Output(1))
	assert.Nil(t, m.Received(3))
}
