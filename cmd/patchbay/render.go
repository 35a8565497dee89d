package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/constant"
	"pipelined.dev/patchbay/gain"
	"pipelined.dev/patchbay/log"
	"pipelined.dev/patchbay/metric"
	"pipelined.dev/patchbay/signal"
	"pipelined.dev/patchbay/wav"
)

func newRenderCommand() *cobra.Command {
	cfg := defaultConfig()
	var configPath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render constant source through gain into wav file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := cfg.load(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return render(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "yaml file with render settings")
	cfg.register(cmd.Flags())
	return cmd
}

func render(cmd *cobra.Command, cfg config) (err error) {
	logger := log.GetLogger()
	logger.SetOutput(cmd.ErrOrStderr())

	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	sink, err := wav.NewSink(f, cfg.SampleRate, signal.BitDepth(cfg.BitDepth))
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	m, err := metric.New(reg)
	if err != nil {
		return err
	}

	g := patchbay.New(
		patchbay.WithName("render"),
		patchbay.WithLogger(logger),
		patchbay.WithMetric(m),
	)
	src := g.AddNode(constant.New(cfg.BufferSize, cfg.Value))
	amp := g.AddNode(gain.New(cfg.Gain))
	dst := g.AddNode(sink)
	if err := g.Patch(src, 0, amp, 0); err != nil {
		return err
	}
	if err := g.Patch(amp, 0, dst, 0); err != nil {
		return err
	}
	if err := g.ComputeOrder(); err != nil {
		return err
	}

	ctx := cmd.Context()
	for i := 0; i < cfg.Passes; i++ {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := g.Pass(); err != nil {
			return err
		}
	}
	if err := g.Flush(); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"graph":   g.String(),
		"passes":  cfg.Passes,
		"samples": sink.Written(),
	}).Info("rendered")
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %v\n",
		cfg.Out, sink.Written(), signal.DurationOf(cfg.SampleRate, int64(sink.Written())))
	return nil
}
