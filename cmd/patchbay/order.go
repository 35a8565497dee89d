package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipelined.dev/patchbay"
	"pipelined.dev/patchbay/constant"
	"pipelined.dev/patchbay/gain"
	"pipelined.dev/patchbay/mixer"
)

type cable struct {
	oNode patchbay.NodeID
	oChan patchbay.OutputID
	iNode patchbay.NodeID
	iChan patchbay.InputID
}

// topologies are demo graphs available for order command.
var topologies = map[string]func(g *patchbay.Graph) error{
	"chain": func(g *patchbay.Graph) error {
		src := g.AddNode(constant.New(1, 1))
		amp := g.AddNode(gain.New(2))
		att := g.AddNode(gain.New(0.5))
		return patchAll(g,
			cable{oNode: src, iNode: amp},
			cable{oNode: amp, iNode: att},
		)
	},
	"diamond": func(g *patchbay.Graph) error {
		mix := g.AddNode(mixer.New(2))
		left := g.AddNode(gain.New(0.5))
		right := g.AddNode(gain.New(2))
		src := g.AddNode(constant.New(1, 1))
		return patchAll(g,
			cable{oNode: src, iNode: left},
			cable{oNode: src, iNode: right},
			cable{oNode: left, iNode: mix, iChan: 0},
			cable{oNode: right, iNode: mix, iChan: 1},
		)
	},
	"cycle": func(g *patchbay.Graph) error {
		a := g.AddNode(gain.New(1))
		b := g.AddNode(gain.New(1))
		return patchAll(g,
			cable{oNode: a, iNode: b},
			cable{oNode: b, iNode: a},
		)
	},
}

func patchAll(g *patchbay.Graph, cables ...cable) error {
	for _, c := range cables {
		if err := g.Patch(c.oNode, c.oChan, c.iNode, c.iChan); err != nil {
			return err
		}
	}
	return nil
}

func newOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "order <chain|diamond|cycle>",
		Short:     "Print execution order of a demo graph",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"chain", "diamond", "cycle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			g := patchbay.New(patchbay.WithName(args[0]))
			if err := topologies[args[0]](g); err != nil {
				return err
			}
			if err := g.ComputeOrder(); err != nil {
				return err
			}
			for i, id := range g.Order() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: node %d %T\n", i, id, g.Node(id))
			}
			return nil
		},
	}
}
