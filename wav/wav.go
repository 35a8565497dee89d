// Package wav provides a node which writes the received signal into a
// mono wav stream.
package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/signal"
)

// pcmFormat is the wav audio format for integer PCM data.
const pcmFormat = 1

// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
var ErrUnsupportedBitDepth = errors.New("only 8, 16, 24 and 32 bit depth is supported")

// Sink has a single input and no outputs. Every run it encodes received
// samples. Flush must be called to finalize the wav headers, it doesn't
// close the underlying writer.
type Sink struct {
	bitDepth signal.BitDepth
	encoder  *wav.Encoder
	in       patchbay.Buffer
	buf      *audio.IntBuffer
	written  int
}

// NewSink creates new wav sink which writes into ws.
func NewSink(ws io.WriteSeeker, sampleRate int, bitDepth signal.BitDepth) (*Sink, error) {
	if !bitDepth.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	return &Sink{
		bitDepth: bitDepth,
		encoder:  wav.NewEncoder(ws, sampleRate, int(bitDepth), 1, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: int(bitDepth),
		},
	}, nil
}

// Run encodes the received samples.
func (s *Sink) Run() error {
	samples := s.in.Samples()
	if len(samples) == 0 {
		return nil
	}
	s.buf.Data = signal.AsInts(s.buf.Data[:0], samples, s.bitDepth)
	if err := s.encoder.Write(s.buf); err != nil {
		return err
	}
	s.written += len(samples)
	return nil
}

// Flush finalizes the wav stream.
func (s *Sink) Flush() error {
	return s.encoder.Close()
}

// Written returns the number of encoded samples.
func (s *Sink) Written() int {
	return s.written
}

// NumInputs implements patchbay.Node.
func (*Sink) NumInputs() int {
	return 1
}

// Input implements patchbay.Node.
func (s *Sink) Input(idx patchbay.InputID) patchbay.In {
	if idx != 0 {
		return nil
	}
	return &s.in
}

// NumOutputs implements patchbay.Node.
func (*Sink) NumOutputs() int {
	return 0
}

// Output always returns nil.
func (*Sink) Output(patchbay.OutputID) patchbay.Out {
	return nil
}
