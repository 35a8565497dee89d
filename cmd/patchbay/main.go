// Command patchbay renders demo patches built with patchbay graphs.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	successExitCode = 0
	errorExitCode   = 1
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(errorExitCode)
	}
	os.Exit(successExitCode)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "patchbay",
		Short:         "Patchbay is a modular audio graph host",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRenderCommand(), newOrderCommand())
	return root
}
