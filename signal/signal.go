// Package signal converts mono float64 signals to PCM ints and back.
package signal

import (
	"math"
	"time"
)

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth24 is 24 bit depth.
	BitDepth24 = BitDepth(24)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// BitDepth contains values required for int-to-float and backward conversion.
type BitDepth int

// maxValue is the largest PCM value for bit depth. Zero means that bit
// depth is not supported.
func (bitDepth BitDepth) maxValue() int {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth24:
		return 1<<23 - 1
	case BitDepth32:
		return math.MaxInt32
	default:
		return 0
	}
}

// Valid returns true if bit depth is supported.
func (bitDepth BitDepth) Valid() bool {
	return bitDepth.maxValue() != 0
}

// offset is added to PCM values of unsigned bit depths. 8 bit PCM is
// unsigned with silence at 128.
func (bitDepth BitDepth) offset() int {
	if bitDepth == BitDepth8 {
		return 1 << 7
	}
	return 0
}

// DurationOf returns time duration of passed samples for this sample rate.
func DurationOf(sampleRate int, samples int64) time.Duration {
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// AsInts converts floats into ints of provided bit depth. Values outside of
// [-1, 1] are clipped. 8 bit values are unsigned. Result is appended to dst.
func AsInts(dst []int, floats []float64, bitDepth BitDepth) []int {
	multiplier := float64(bitDepth.maxValue())
	offset := bitDepth.offset()
	for _, f := range floats {
		switch {
		case f > 1:
			f = 1
		case f < -1:
			f = -1
		}
		dst = append(dst, int(math.Round(f*multiplier))+offset)
	}
	return dst
}

// AsFloats converts ints of provided bit depth into floats. 8 bit values are
// expected to be unsigned. Result is appended to dst.
func AsFloats(dst []float64, ints []int, bitDepth BitDepth) []float64 {
	offset := bitDepth.offset()
	devider := float64(bitDepth.maxValue())
	if devider == 0 {
		devider = 1
	}
	for _, i := range ints {
		dst = append(dst, float64(i-offset)/devider)
	}
	return dst
}
