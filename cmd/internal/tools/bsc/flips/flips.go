package flips

import (
	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools/bsc"
	"github.com/spf13/cobra"
)

var (
	Trials  uint
	Flips   []int
	Threads uint
)

const typeInfo = "BSC:flips"

var FlipsRun = func(cmd *cobra.Command, args []string) {
	xs := make([]float64, len(Flips))
	for i, f := range Flips {
		xs[i] = float64(f)
	}

	channelFor := func(x float64) benchmarking.Channel {
		return benchmarking.FlipChannel(int(x))
	}
	bsc.Simulate(args, typeInfo, xs, int(Trials), int(Threads), channelFor)
}
