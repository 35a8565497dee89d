package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"pipelined.dev/patchbay/signal"
)

// config holds render settings. It's loaded from yaml file and then
// overridden with explicitly set flags.
type config struct {
	SampleRate int     `yaml:"sample_rate"`
	BufferSize int     `yaml:"buffer_size"`
	Passes     int     `yaml:"passes"`
	Value      float64 `yaml:"value"`
	Gain       float64 `yaml:"gain"`
	BitDepth   int     `yaml:"bit_depth"`
	Out        string  `yaml:"out"`
}

func defaultConfig() config {
	return config{
		SampleRate: 44100,
		BufferSize: 512,
		Passes:     862,
		Value:      0.5,
		Gain:       1,
		BitDepth:   16,
		Out:        "out.wav",
	}
}

// register binds flags to the config fields.
func (c *config) register(fs *pflag.FlagSet) {
	fs.IntVar(&c.SampleRate, "sample-rate", c.SampleRate, "sample rate of the output")
	fs.IntVar(&c.BufferSize, "buffer-size", c.BufferSize, "number of samples per pass")
	fs.IntVar(&c.Passes, "passes", c.Passes, "number of passes to render")
	fs.Float64Var(&c.Value, "value", c.Value, "value of the constant source")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "gain factor")
	fs.IntVar(&c.BitDepth, "bit-depth", c.BitDepth, "bit depth of the output")
	fs.StringVar(&c.Out, "out", c.Out, "output wav file")
}

// load reads yaml file into config. Values of changed flags are kept.
func (c *config) load(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	flags := *c
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "sample-rate":
			c.SampleRate = flags.SampleRate
		case "buffer-size":
			c.BufferSize = flags.BufferSize
		case "passes":
			c.Passes = flags.Passes
		case "value":
			c.Value = flags.Value
		case "gain":
			c.Gain = flags.Gain
		case "bit-depth":
			c.BitDepth = flags.BitDepth
		case "out":
			c.Out = flags.Out
		}
	})
	return nil
}

func (c config) validate() error {
	var message string
	if c.SampleRate <= 0 {
		message = message + "sample rate must be positive\n"
	}
	if c.BufferSize <= 0 {
		message = message + "buffer size must be positive\n"
	}
	if c.Passes < 0 {
		message = message + "passes must not be negative\n"
	}
	if !signal.BitDepth(c.BitDepth).Valid() {
		message = message + fmt.Sprintf("unsupported bit depth %d\n", c.BitDepth)
	}
	if c.Out == "" {
		message = message + "output file is required\n"
	}
	if message != "" {
		return errors.New(message)
	}
	return nil
}
