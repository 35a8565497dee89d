package wav_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/constant"
	"pipelined.dev/patchbay/signal"
	wavsink "pipelined.dev/patchbay/wav"
)

const (
	bufferSize = 512
	sampleRate = 44100
)

var _ patchbay.Flusher = (*wavsink.Sink)(nil)

func TestSink(t *testing.T) {
	tests := []struct {
		bitDepth signal.BitDepth
		passes   int
		value    float64
		pcm      int
	}{
		{bitDepth: signal.BitDepth8, passes: 1, value: 0.5, pcm: 192},
		{bitDepth: signal.BitDepth8, passes: 1, value: -0.5, pcm: 64},
		{bitDepth: signal.BitDepth8, passes: 2, value: 0, pcm: 128},
		{bitDepth: signal.BitDepth16, passes: 10, value: 0.5, pcm: 16384},
		{bitDepth: signal.BitDepth16, passes: 3, value: -0.25, pcm: -8192},
		{bitDepth: signal.BitDepth24, passes: 1, value: 0.5, pcm: 4194304},
		{bitDepth: signal.BitDepth24, passes: 1, value: -0.5, pcm: -4194304},
		{bitDepth: signal.BitDepth32, passes: 1, value: 1, pcm: math.MaxInt32},
	}
	for _, c := range tests {
		path := filepath.Join(t.TempDir(), "out.wav")
		f, err := os.Create(path)
		require.NoError(t, err)

		sink, err := wavsink.NewSink(f, sampleRate, c.bitDepth)
		require.NoError(t, err)

		g := patchbay.New()
		src := g.AddNode(constant.New(bufferSize, c.value))
		dst := g.AddNode(sink)
		require.NoError(t, g.Patch(src, 0, dst, 0))
		for i := 0; i < c.passes; i++ {
			require.NoError(t, g.Pass())
		}
		require.NoError(t, g.Flush())
		require.NoError(t, f.Close())
		assert.Equal(t, c.passes*bufferSize, sink.Written())

		f, err = os.Open(path)
		require.NoError(t, err)
		d := wav.NewDecoder(f)
		require.True(t, d.IsValidFile())
		buf, err := d.FullPCMBuffer()
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.Equal(t, uint32(sampleRate), d.SampleRate)
		assert.Equal(t, uint16(c.bitDepth), d.BitDepth)
		assert.Equal(t, uint16(1), d.NumChans)
		require.Len(t, buf.Data, c.passes*bufferSize)
		assert.Equal(t, c.pcm, buf.Data[0])
		assert.Equal(t, c.pcm, buf.Data[len(buf.Data)-1])
		// one quantization step of the bit depth.
		delta := 1 / float64(int(1)<<(c.bitDepth-1))
		floats := signal.AsFloats(nil, buf.Data, c.bitDepth)
		assert.InDelta(t, c.value, floats[0], delta)
		assert.InDelta(t, c.value, floats[len(floats)-1], delta)
	}
}

func TestUnsupportedBitDepth(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	_, err = wavsink.NewSink(f, sampleRate, signal.BitDepth(12))
	assert.True(t, errors.Is(err, wavsink.ErrUnsupportedBitDepth))
}

func TestChannels(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	sink, err := wavsink.NewSink(f, sampleRate, signal.BitDepth16)
	require.NoError(t, err)
	assert.Equal(t, 1, sink.NumInputs())
	assert.Equal(t, 0, sink.NumOutputs())
	assert.Nil(t, sink.Input(1))
	assert.Nil(t, sink.Output(0))
	assert.NoError(t, sink.Run())
	assert.Equal(t, 0, sink.Written())
}
